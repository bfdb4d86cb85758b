// Package gui is the front door of Facet: one object that owns the
// registries, builds element trees from configuration, reads their
// values and runs their lifecycle.
package gui

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/go-facet/facet/pkg/admin"
	"github.com/go-facet/facet/pkg/binder"
	"github.com/go-facet/facet/pkg/builder"
	"github.com/go-facet/facet/pkg/config"
	"github.com/go-facet/facet/pkg/element"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
	"github.com/go-facet/facet/pkg/popup"
	"github.com/go-facet/facet/pkg/reader"
	"github.com/go-facet/facet/pkg/store"
	"github.com/go-facet/facet/pkg/theme"
)

// Options configures a GUI. Zero-valued fields fall back to the stock
// registries and defaults, so the zero Options is fully usable.
type Options struct {
	Keys       *element.Keys
	Aesthetics *theme.Aesthetics
	Builders   map[string]builder.Builder
	Getters    map[string]reader.Getter
	Binders    map[string]binder.Binder
	Managers   map[string]admin.Manager
	Popups     map[string]popup.Popup
	// Actions are caller-supplied callbacks, merged over the built-in
	// "exit" and "print" actions.
	Actions builder.ActionTable
	// Diagnostics receives registry diagnostic output; nil means
	// standard output.
	Diagnostics io.Writer
}

// GUI owns one declarative interface: its configuration records, the
// live elements built from them and every registry involved.
type GUI struct {
	keys       element.Keys
	aesthetics theme.Aesthetics

	factory *builder.Factory
	reader  *reader.Reader
	binders *binder.Workshop
	admin   *admin.Admin
	popups  *popup.Registry

	actions     builder.ActionTable
	diagnostics io.Writer

	formatVersion string
	configData    []*element.Record
	elements      []*element.Record
}

// New assembles a GUI from options.
func New(opts Options) *GUI {
	keys := element.DefaultKeys()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	aesthetics := theme.Default()
	if opts.Aesthetics != nil {
		aesthetics = *opts.Aesthetics
	}
	diagnostics := opts.Diagnostics
	if diagnostics == nil {
		diagnostics = os.Stdout
	}

	g := &GUI{
		keys:        keys,
		aesthetics:  aesthetics,
		factory:     builder.New(keys, aesthetics),
		reader:      reader.New(keys),
		binders:     binder.NewWorkshop(keys),
		admin:       admin.New(),
		popups:      popup.NewRegistry(),
		diagnostics: diagnostics,
	}
	g.factory.SetDiagnostics(diagnostics)
	g.binders.SetDiagnostics(diagnostics)

	register(g.factory.Register, builder.DefaultBuilders(), opts.Builders)
	register(g.reader.Register, reader.DefaultGetters(), opts.Getters)
	register(g.binders.Register, binder.DefaultBinders(), opts.Binders)
	register(g.admin.Register, admin.DefaultManagers(), opts.Managers)
	register(g.popups.Register, popup.DefaultPopups(), opts.Popups)

	g.actions = builder.ActionTable{
		"exit":  func() { g.Quit() },
		"print": func() { fmt.Fprintln(g.diagnostics, g.ParameterValues(false)) },
	}
	for name, action := range opts.Actions {
		g.actions[name] = action
	}
	return g
}

// register loads defaults then overrides into a registry.
func register[T any](add func(string, T), defaults, overrides map[string]T) {
	for name, v := range defaults {
		add(name, v)
	}
	for name, v := range overrides {
		add(name, v)
	}
}

// SetConfigData replaces the configuration records the next Build
// uses. Records are taken as config-only data; any live state on them
// is ignored.
func (g *GUI) SetConfigData(records []*element.Record) {
	g.configData = element.CloneConfig(records)
}

// ReadConfig loads configuration records and their key vocabulary from
// a file. The loaded vocabulary replaces the current one across every
// subsystem.
func (g *GUI) ReadConfig(path string) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}
	g.formatVersion = doc.FormatVersion
	g.configData = doc.Records
	if doc.Keys != g.keys {
		g.keys = doc.Keys
		g.factory = builder.New(g.keys, g.aesthetics)
		g.factory.SetDiagnostics(g.diagnostics)
		register(g.factory.Register, builder.DefaultBuilders(), nil)
		g.reader = reader.New(g.keys)
		register(g.reader.Register, reader.DefaultGetters(), nil)
		g.binders = binder.NewWorkshop(g.keys)
		g.binders.SetDiagnostics(g.diagnostics)
		register(g.binders.Register, binder.DefaultBinders(), nil)
	}
	return nil
}

// WriteConfig saves the current configuration snapshot, including any
// defaults pushed back from live widgets.
func (g *GUI) WriteConfig(path string) error {
	return config.Save(path, &config.Document{
		FormatVersion: g.formatVersion,
		Keys:          g.keys,
		Records:       g.CurrentConfigData(),
	})
}

// Build turns the current configuration into live elements and wires
// their event bindings. Building again replaces the previous tree
// without destroying it; call Quit first to tear a built tree down.
func (g *GUI) Build() error {
	elements, err := g.factory.Create(g.configData, g.actions, nil)
	if err != nil {
		return err
	}
	if err := g.binders.Apply(elements, g.actions); err != nil {
		return err
	}
	g.elements = elements
	return nil
}

// Elements returns the built element tree, nil before Build.
func (g *GUI) Elements() []*element.Record { return g.elements }

// ParameterValues reads the current parameter values. With readAll
// false, parameters whose activator is not satisfied are left out.
func (g *GUI) ParameterValues(readAll bool) map[string]any {
	return g.reader.Read(g.elements, g.elements, nil, readAll)
}

// InsertContent inserts text into the editable widget of a named
// element. index follows the widget's own addressing and tolerates the
// other form.
func (g *GUI) InsertContent(name, index, content string) error {
	return g.admin.Administrate("content_edit", &admin.Request{
		Records:     g.elements,
		Target:      name,
		Index:       index,
		Content:     content,
		Keys:        g.keys,
		Diagnostics: g.diagnostics,
	})
}

// ReplaceContent replaces the whole contents of the editable widget of
// a named element.
func (g *GUI) ReplaceContent(name, content string) error {
	return g.admin.Administrate("content_edit", &admin.Request{
		Records:     g.elements,
		Target:      name,
		Content:     content,
		Replace:     true,
		Keys:        g.keys,
		Diagnostics: g.diagnostics,
	})
}

// HideOrShow toggles a named element between hidden and shown.
func (g *GUI) HideOrShow(name string) error {
	return g.admin.Administrate("hide_show", &admin.Request{
		Records:     g.elements,
		Target:      name,
		Keys:        g.keys,
		Diagnostics: g.diagnostics,
	})
}

// StyleElements applies new aesthetics to the shared widget styles and
// keeps them for elements built afterwards.
func (g *GUI) StyleElements(aesthetics theme.Aesthetics) error {
	g.aesthetics = aesthetics
	return g.admin.Administrate("style", &admin.Request{
		Records:     g.elements,
		Aesthetics:  aesthetics,
		Keys:        g.keys,
		Diagnostics: g.diagnostics,
	})
}

// SetEntryDefaults pushes every entry's current value into its
// default, so the next configuration snapshot reopens with it.
func (g *GUI) SetEntryDefaults() error {
	return g.administrate("set_entry_defaults")
}

// SetDropDownDefaults pushes every drop-down's current selection into
// its default option.
func (g *GUI) SetDropDownDefaults() error {
	return g.administrate("set_drop_down_defaults")
}

// SetTextBoxDefaults pushes every text box's current contents into its
// default text.
func (g *GUI) SetTextBoxDefaults() error {
	return g.administrate("set_text_box_defaults")
}

func (g *GUI) administrate(duty string) error {
	return g.admin.Administrate(duty, &admin.Request{
		Records:     g.elements,
		Keys:        g.keys,
		Aesthetics:  g.aesthetics,
		Diagnostics: g.diagnostics,
	})
}

// CurrentConfigData returns a configuration-only deep copy of the
// current tree: the built elements when there are any, otherwise the
// loaded configuration.
func (g *GUI) CurrentConfigData() []*element.Record {
	if g.elements != nil {
		return element.CloneConfig(g.elements)
	}
	return element.CloneConfig(g.configData)
}

// AskYesNo shows a yes/no dialog; true means Yes.
func (g *GUI) AskYesNo(title, message string) (bool, error) {
	answer, err := g.popups.Dialog("yes_no", popup.Params{Title: title, Message: message})
	if err != nil {
		return false, err
	}
	yes, _ := answer.(bool)
	return yes, nil
}

// AskFileOpen asks for an existing file path; "" means cancelled.
func (g *GUI) AskFileOpen(title, initialPath string) (string, error) {
	answer, err := g.popups.Dialog("file_open", popup.Params{
		Title:       title,
		InitialPath: initialPath,
		Types:       configFileTypes,
	})
	if err != nil {
		return "", err
	}
	path, _ := answer.(string)
	return path, nil
}

// AskFileSaveAs asks for a destination file path; "" means cancelled.
func (g *GUI) AskFileSaveAs(title, initialPath string) (string, error) {
	answer, err := g.popups.Dialog("file_save_as", popup.Params{
		Title:       title,
		InitialPath: initialPath,
		Types:       configFileTypes,
	})
	if err != nil {
		return "", err
	}
	path, _ := answer.(string)
	return path, nil
}

var configFileTypes = []native.FileType{
	{Label: "JSON configuration", Patterns: []string{"*.json"}},
}

// Open runs the blocking event loop over every built top-level window,
// returning when all of them are destroyed.
func (g *GUI) Open() error {
	return g.administrate("start_event_loop")
}

// Quit asks for confirmation and, on yes, destroys every built
// top-level window. It reports whether teardown happened.
func (g *GUI) Quit() bool {
	yes, err := g.AskYesNo("Quit", "Close the interface?")
	if err != nil || !yes {
		return false
	}
	if err := g.administrate("quit_close"); err != nil {
		// Quit runs from close callbacks with nowhere to return an
		// error, so surface it through the global handler.
		var e *facerr.Error
		if goerrors.As(err, &e) {
			facerr.Report(e)
		}
		return false
	}
	return true
}

// SaveState persists the current parameter values to a database file.
func (g *GUI) SaveState(path string) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.SaveSnapshot(g.ParameterValues(true))
}

// RestoreState loads persisted parameter values and folds them into
// the configuration defaults, so the next Build opens with them.
func (g *GUI) RestoreState(path string) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	values, err := s.LoadSnapshot()
	if err != nil {
		return err
	}
	element.Walk(g.configData, func(rec *element.Record) bool {
		name, ok := rec.Properties.Get(g.keys.ParameterName, nil).(string)
		if !ok || name == "" {
			return true
		}
		value, ok := values[name]
		if !ok {
			return true
		}
		switch rec.Type {
		case "entry":
			rec.Properties[g.keys.DefaultValue] = fmt.Sprint(value)
		case "drop_down":
			rec.Properties[g.keys.DefaultOption] = fmt.Sprint(value)
		case "text_box":
			rec.Properties[g.keys.DefaultText] = fmt.Sprint(value)
		}
		return true
	})
	return nil
}
