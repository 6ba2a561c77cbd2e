package ui

import "sync"

// ScrollLocker блокирует прокрутку фона, пока открыта модалка.
// На iOS Safari overflow:hidden не работает, поэтому реализация обязана
// сохранять и точно восстанавливать смещение прокрутки.
type ScrollLocker interface {
	Lock()
	Unlock()
}

// OffsetScrollLocker — ScrollLocker, который запоминает смещение при
// блокировке и восстанавливает его при разблокировке.
type OffsetScrollLocker struct {
	Offset    func() int
	SetOffset func(int)
	saved     int
}

func (l *OffsetScrollLocker) Lock() {
	if l.Offset != nil {
		l.saved = l.Offset()
	}
}

func (l *OffsetScrollLocker) Unlock() {
	if l.SetOffset != nil {
		l.SetOffset(l.saved)
	}
}

// Overlay — модальная карточка детали: closed | open(item).
// На странице одновременно открыта максимум одна; открытие нового элемента
// заменяет текущий без промежуточного закрытия (нет двойного перехода).
type Overlay struct {
	mu     sync.Mutex
	item   interface{}
	open   bool
	locker ScrollLocker
}

func NewOverlay(locker ScrollLocker) *Overlay {
	return &Overlay{locker: locker}
}

// Open показывает карточку элемента. Если модалка уже открыта, элемент
// заменяется, прокрутка остаётся заблокированной.
func (o *Overlay) Open(item interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open && o.locker != nil {
		o.locker.Lock()
	}
	o.item = item
	o.open = true
}

// Close — кнопка закрытия.
func (o *Overlay) Close() { o.dismiss() }

// Escape — клавиша Escape при открытой модалке.
func (o *Overlay) Escape() { o.dismiss() }

// OutsideClick — клик/тап вне границ модалки.
func (o *Overlay) OutsideClick() { o.dismiss() }

func (o *Overlay) dismiss() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open {
		return
	}
	o.open = false
	o.item = nil
	if o.locker != nil {
		o.locker.Unlock()
	}
}

func (o *Overlay) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}

// Item возвращает открытый элемент или nil.
func (o *Overlay) Item() interface{} {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.item
}
