package button

import (
	"sync"
)

type uiButton struct {
	mu *sync.Mutex

	label   string
	visible bool
	onPress func()
}

// Button is a minimal UI trigger collaborator for button-driven list control.
// The scroller hides all buttons unless button-driven control is active;
// hosts wire Trigger to their own click/key handling.
type Button interface {
	// Label returns the button's display label.
	//
	// Returns:
	//   - string: the label text
	Label() string

	// Visible returns whether the button should be shown by the host.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// SetVisible sets whether the button should be shown by the host.
	//
	// Parameters:
	//   - visible: true to show the button
	SetVisible(visible bool)

	// SetOnPress registers the handler invoked by Trigger.
	//
	// Parameters:
	//   - handler: function called on each press (or nil to disable)
	SetOnPress(handler func())

	// Trigger fires the press handler. No-op while the button is hidden
	// or when no handler is registered.
	Trigger()
}

var _ Button = &uiButton{}

// NewButton creates a new Button with the given options.
// Buttons are visible by default; the scroller hides them when
// button-driven control is not active.
//
// Parameters:
//   - options: functional options to configure the button
//
// Returns:
//   - Button: the newly created button
func NewButton(options ...ButtonBuilderOption) Button {
	b := &uiButton{
		mu:      &sync.Mutex{},
		visible: true,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *uiButton) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

func (b *uiButton) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *uiButton) SetVisible(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = visible
}

func (b *uiButton) SetOnPress(handler func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPress = handler
}

func (b *uiButton) Trigger() {
	b.mu.Lock()
	handler := b.onPress
	visible := b.visible
	b.mu.Unlock()

	if !visible || handler == nil {
		return
	}
	handler()
}
