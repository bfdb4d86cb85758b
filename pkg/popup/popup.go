// Package popup routes modal dialog requests through a registry keyed
// by popup type, on top of the shared native dialog provider.
package popup

import (
	"fmt"

	"github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// Params carries the inputs of one dialog invocation.
type Params struct {
	// Title is the dialog title-bar text.
	Title string
	// Message is the question or prompt body.
	Message string
	// InitialPath seeds file dialogs.
	InitialPath string
	// Types filters file dialogs by extension.
	Types []native.FileType
}

// Popup shows one kind of modal dialog. The result's dynamic type
// depends on the dialog shape: bool, *bool or string. A cancelled
// dialog yields the shape's falsy sentinel, never an error.
type Popup interface {
	Show(params Params) any
}

// Registry dispatches dialog requests on the popup type. There is no
// fallback; an unregistered type is an error.
type Registry struct {
	popups map[string]Popup
}

// NewRegistry creates an empty popup registry.
func NewRegistry() *Registry {
	return &Registry{popups: map[string]Popup{}}
}

// Register associates a popup with a type name, silently overwriting
// any previous registration.
func (r *Registry) Register(popupType string, p Popup) {
	r.popups[popupType] = p
}

// Dialog shows the popup registered under popupType and returns its
// result.
func (r *Registry) Dialog(popupType string, params Params) (any, error) {
	p, ok := r.popups[popupType]
	if !ok {
		return nil, &errors.Error{
			Op:   "popup.Dialog",
			Kind: errors.KindUnknownPopupType,
			Err:  fmt.Errorf("no popup registered for type %q", popupType),
		}
	}
	return p.Show(params), nil
}

// OkCancelPopup asks for confirmation; true means Ok.
type OkCancelPopup struct{}

func (OkCancelPopup) Show(params Params) any {
	return native.Dialogs().OkCancel(params.Title, params.Message)
}

// YesNoPopup asks a yes/no question; true means Yes.
type YesNoPopup struct{}

func (YesNoPopup) Show(params Params) any {
	return native.Dialogs().YesNo(params.Title, params.Message)
}

// YesNoCancelPopup asks a yes/no question with a cancel escape; nil
// means cancelled.
type YesNoCancelPopup struct{}

func (YesNoCancelPopup) Show(params Params) any {
	return native.Dialogs().YesNoCancel(params.Title, params.Message)
}

// FileOpenPopup asks for an existing file path; "" means cancelled.
type FileOpenPopup struct{}

func (FileOpenPopup) Show(params Params) any {
	return native.Dialogs().FileOpen(params.Title, params.InitialPath, params.Types)
}

// FileSaveAsPopup asks for a destination file path; "" means
// cancelled.
type FileSaveAsPopup struct{}

func (FileSaveAsPopup) Show(params Params) any {
	return native.Dialogs().FileSaveAs(params.Title, params.InitialPath, params.Types)
}

// DefaultPopups returns the standard registry contents keyed by popup
// type.
func DefaultPopups() map[string]Popup {
	return map[string]Popup{
		"ok_cancel":     OkCancelPopup{},
		"yes_no":        YesNoPopup{},
		"yes_no_cancel": YesNoCancelPopup{},
		"file_open":     FileOpenPopup{},
		"file_save_as":  FileSaveAsPopup{},
	}
}
