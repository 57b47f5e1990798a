package button

// ButtonBuilderOption is a functional option for configuring a Button.
type ButtonBuilderOption func(*uiButton)

// WithLabel sets the button's display label.
//
// Parameters:
//   - label: the label text
//
// Returns:
//   - ButtonBuilderOption: functional option to set the label
func WithLabel(label string) ButtonBuilderOption {
	return func(b *uiButton) {
		b.label = label
	}
}

// WithVisible sets the button's initial visibility.
//
// Parameters:
//   - visible: true to show the button
//
// Returns:
//   - ButtonBuilderOption: functional option to set visibility
func WithVisible(visible bool) ButtonBuilderOption {
	return func(b *uiButton) {
		b.visible = visible
	}
}

// WithOnPress registers the press handler during construction.
//
// Parameters:
//   - handler: function called on each press
//
// Returns:
//   - ButtonBuilderOption: functional option to set the handler
func WithOnPress(handler func()) ButtonBuilderOption {
	return func(b *uiButton) {
		b.onPress = handler
	}
}
