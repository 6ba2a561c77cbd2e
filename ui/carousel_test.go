package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCarouselNextWrapsAround(t *testing.T) {
	c := NewCarousel(3, 0)
	c.Next()
	assert.Equal(t, 1, c.Index())
	c.Next()
	c.Next()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, c.Direction())
}

func TestCarouselPrevWrapsAround(t *testing.T) {
	c := NewCarousel(3, 0)
	c.Prev()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, -1, c.Direction())
}

func TestCarouselFullCycleReturnsToStart(t *testing.T) {
	c := NewCarousel(7, 0)
	c.Jump(3)
	for i := 0; i < 7; i++ {
		c.Next()
	}
	assert.Equal(t, 3, c.Index())
	for i := 0; i < 7; i++ {
		c.Prev()
	}
	assert.Equal(t, 3, c.Index())
}

func TestCarouselSingleItemDoesNotMove(t *testing.T) {
	c := NewCarousel(1, 0)
	c.Next()
	c.Prev()
	c.TouchStart(200)
	c.TouchEnd(0)
	assert.Equal(t, 0, c.Index())
}

func TestCarouselJumpSetsDirection(t *testing.T) {
	c := NewCarousel(5, 0)
	c.Jump(3)
	assert.Equal(t, 3, c.Index())
	assert.Equal(t, 1, c.Direction())
	c.Jump(1)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, -1, c.Direction())
	// вне диапазона — игнор
	c.Jump(9)
	assert.Equal(t, 1, c.Index())
}

func TestCarouselSwipeThreshold(t *testing.T) {
	c := NewCarousel(4, 0)

	// сдвиг меньше порога — без перехода
	c.TouchStart(100)
	c.TouchEnd(100 - SwipeThreshold + 1)
	assert.Equal(t, 0, c.Index())

	// свайп влево — следующий
	c.TouchStart(100)
	c.TouchEnd(100 - SwipeThreshold)
	assert.Equal(t, 1, c.Index())

	// свайп вправо — предыдущий
	c.TouchStart(100)
	c.TouchEnd(100 + SwipeThreshold)
	assert.Equal(t, 0, c.Index())
}

func TestCarouselResizeClampsIndex(t *testing.T) {
	c := NewCarousel(5, 0)
	c.Jump(4)
	c.Resize(2)
	assert.Equal(t, 1, c.Index())
	c.Resize(0)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Len())
}

func TestCarouselVisibleWindow(t *testing.T) {
	c := NewCarousel(0, 0)
	assert.Nil(t, c.VisibleWindow())

	c.Resize(1)
	assert.Equal(t, []int{0}, c.VisibleWindow())

	c.Resize(4)
	assert.Equal(t, []int{3, 0, 1}, c.VisibleWindow())
	c.Next()
	assert.Equal(t, []int{0, 1, 2}, c.VisibleWindow())
}

func TestCarouselAutoAdvance(t *testing.T) {
	c := NewCarousel(3, 5*time.Millisecond)
	c.StartAuto()
	defer c.Stop()

	deadline := time.After(2 * time.Second)
	for c.Index() == 0 {
		select {
		case <-deadline:
			t.Fatal("carousel never auto-advanced")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestCarouselPauseOnHover(t *testing.T) {
	c := NewCarousel(3, 5*time.Millisecond)
	c.PointerEnter()
	c.StartAuto()
	defer c.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, c.Index())

	c.PointerLeave()
	deadline := time.After(2 * time.Second)
	for c.Index() == 0 {
		select {
		case <-deadline:
			t.Fatal("carousel did not resume after PointerLeave")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestCarouselStopIsIdempotent(t *testing.T) {
	c := NewCarousel(3, time.Minute)
	c.StartAuto()
	c.StartAuto() // повторный запуск — no-op
	c.Stop()
	c.Stop()
}
