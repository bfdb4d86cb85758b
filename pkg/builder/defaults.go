package builder

// DefaultBuilders returns the stock builder registry: one builder per
// element type the toolkit ships with. Callers may add or overwrite
// entries before registering them with a Factory.
func DefaultBuilders() map[string]Builder {
	return map[string]Builder{
		"NoneType":       GenericBuilder{},
		"window":         WindowBuilder{},
		"menu_bar":       MenuBarBuilder{},
		"drop_down_menu": DropDownMenuBuilder{},
		"menu_command":   MenuCommandBuilder{},
		"frame":          FrameBuilder{},
		"tab_binder":     TabBinderBuilder{},
		"tab":            TabBuilder{},
		"text_line":      TextLineBuilder{},
		"text_box":       TextEntryBoxBuilder{},
		"entry":          ValueEntryBuilder{},
		"drop_down":      DropDownBuilder{},
		"button":         ButtonBuilder{},
	}
}
