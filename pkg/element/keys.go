package element

// Keys is the property-key vocabulary shared by every subsystem.
//
// Configuration files carry their own vocabulary under "builder_keys",
// which lets a deployment rename any key without touching code. The
// zero value is not usable; start from DefaultKeys.
type Keys struct {
	// Structural keys.
	Type       string `json:"type_key"`
	Name       string `json:"name_key"`
	Properties string `json:"properties_key"`
	Children   string `json:"children_key"`
	Widget     string `json:"widget_key"`
	Parameter  string `json:"parameter_key"`

	// Common property keys.
	ParameterName string `json:"parameter_name_key"`
	Activator     string `json:"activator_key"`
	RequiredValue string `json:"required_value_key"`
	EventType     string `json:"event_type_key"`
	Action        string `json:"action_key"`
	Visible       string `json:"visible_key"`
	OnNewRow      string `json:"on_new_row_key"`
	Column        string `json:"column_key"`

	// Type-specific property keys.
	VisibleText     string `json:"visible_text_key"`
	SizeAndPosition string `json:"size_and_position_key"`
	Width           string `json:"width_key"`
	Height          string `json:"height_key"`
	Justification   string `json:"justification_key"`
	DefaultText     string `json:"default_text_key"`
	DefaultValue    string `json:"default_value_key"`
	HasScrollbar    string `json:"has_scrollbar_key"`
	Options         string `json:"options_key"`
	DefaultOption   string `json:"default_option_key"`
	OnlySelectable  string `json:"only_selectable_key"`
}

// DefaultKeys returns the standard key vocabulary.
func DefaultKeys() Keys {
	return Keys{
		Type:       "type",
		Name:       "name",
		Properties: "properties",
		Children:   "children",
		Widget:     "widget",
		Parameter:  "parameter",

		ParameterName: "parameter_name",
		Activator:     "activator",
		RequiredValue: "required_value",
		EventType:     "event_type",
		Action:        "action",
		Visible:       "visible",
		OnNewRow:      "on_new_row",
		Column:        "column",

		VisibleText:     "visible_text",
		SizeAndPosition: "size_and_position",
		Width:           "width",
		Height:          "height",
		Justification:   "justification",
		DefaultText:     "default_text",
		DefaultValue:    "default_value",
		HasScrollbar:    "has_scrollbar",
		Options:         "options",
		DefaultOption:   "default_option",
		OnlySelectable:  "only_selectable",
	}
}
