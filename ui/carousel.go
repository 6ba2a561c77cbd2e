// Package ui содержит модели состояния клиентских компонентов сайта:
// карусель контента и модальная карточка детали. Логика вынесена из
// разметки, чтобы её можно было тестировать изолированно.
package ui

import (
	"sync"
	"time"
)

// Интервалы автопрокрутки каруселей.
const (
	CredentialsInterval = 4 * time.Second
	ProductsInterval    = 8 * time.Second
)

// SwipeThreshold — минимальный сдвиг пальца по X для срабатывания свайпа, px.
const SwipeThreshold = 30.0

// Carousel — циклическая карусель из N элементов с автопрокруткой,
// свайпом и паузой при наведении. active_index всегда валиден для
// текущего списка; при сокращении списка индекс зажимается.
type Carousel struct {
	mu        sync.Mutex
	n         int
	index     int
	direction int // +1 вперёд, -1 назад — только для анимации перехода
	paused    bool

	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}

	touchStartX float64
	touching    bool
}

func NewCarousel(n int, interval time.Duration) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{n: n, direction: 1, interval: interval}
}

func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Direction — направление последнего перехода (для анимации).
func (c *Carousel) Direction() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

// Next переходит к следующему элементу по кругу. При N<=1 движения нет.
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advance(1)
}

// Prev переходит к предыдущему элементу по кругу.
func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advance(-1)
}

// advance вызывается под мьютексом.
func (c *Carousel) advance(dir int) {
	if c.n <= 1 {
		return
	}
	c.direction = dir
	c.index = (c.index + dir + c.n) % c.n
}

// Jump выставляет индекс напрямую (клик по точке), направление анимации
// выводится из взаимного положения старого и нового индексов.
func (c *Carousel) Jump(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == 0 || i < 0 || i >= c.n || i == c.index {
		return
	}
	if i > c.index {
		c.direction = 1
	} else {
		c.direction = -1
	}
	c.index = i
}

// TouchStart фиксирует x-координату начала касания.
func (c *Carousel) TouchStart(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touchStartX = x
	c.touching = true
}

// TouchEnd завершает жест: сдвиг влево — следующий, вправо — предыдущий.
func (c *Carousel) TouchEnd(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.touching {
		return
	}
	c.touching = false
	delta := x - c.touchStartX
	if delta <= -SwipeThreshold {
		c.advance(1)
	} else if delta >= SwipeThreshold {
		c.advance(-1)
	}
}

// PointerEnter приостанавливает автопрокрутку; таймер продолжает тикать,
// но тики игнорируются, пока указатель внутри.
func (c *Carousel) PointerEnter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

func (c *Carousel) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// Resize сообщает карусели новый размер списка после рефетча.
// Политика clamp-on-shrink: индекс зажимается в min(index, n-1),
// при пустом списке сбрасывается в 0.
func (c *Carousel) Resize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 {
		n = 0
	}
	c.n = n
	if n == 0 {
		c.index = 0
		return
	}
	if c.index > n-1 {
		c.index = n - 1
	}
}

// VisibleWindow — индексы видимого окна: предыдущий, активный, следующий
// (боковые визуально приглушены). nil при пустом списке, один элемент при N=1.
func (c *Carousel) VisibleWindow() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.n == 0:
		return nil
	case c.n == 1:
		return []int{0}
	}
	return []int{(c.index - 1 + c.n) % c.n, c.index, (c.index + 1) % c.n}
}

// StartAuto запускает автопрокрутку с интервалом карусели.
// Повторный вызов без Stop — no-op.
func (c *Carousel) StartAuto() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil || c.interval <= 0 {
		return
	}
	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})
	go c.run(c.ticker, c.done)
}

func (c *Carousel) run(t *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-t.C:
			c.mu.Lock()
			if !c.paused {
				c.advance(1)
			}
			c.mu.Unlock()
		}
	}
}

// Stop останавливает автопрокрутку и освобождает таймер. Обязателен при
// размонтировании компонента, иначе тикер утечёт.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}
