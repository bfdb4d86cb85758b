package native

// FileType describes one entry of a file dialog's type filter: a label
// and the extensions it covers.
type FileType struct {
	Label    string
	Patterns []string
}

// DialogProvider shows modal dialogs and returns the user's decision
// synchronously. Cancelled dialogs return the falsy sentinel for their
// shape (false, nil, or ""), never an error.
type DialogProvider interface {
	// OkCancel asks for confirmation; true means Ok.
	OkCancel(title, message string) bool
	// YesNo asks a yes/no question; true means Yes.
	YesNo(title, message string) bool
	// YesNoCancel asks a yes/no question with a cancel escape; nil
	// means cancelled.
	YesNoCancel(title, message string) *bool
	// FileOpen asks for an existing file; "" means cancelled.
	FileOpen(title, initialPath string, types []FileType) string
	// FileSaveAs asks for a destination file; "" means cancelled.
	FileSaveAs(title, initialPath string, types []FileType) string
}

var dialogs DialogProvider = &ScriptedDialogs{}

// SetDialogs installs the dialog provider. Passing nil restores the
// default scripted provider.
func SetDialogs(p DialogProvider) {
	if p == nil {
		p = &ScriptedDialogs{}
	}
	dialogs = p
}

// Dialogs returns the current dialog provider.
func Dialogs() DialogProvider {
	return dialogs
}

// ScriptedDialogs is a DialogProvider that answers from queues. With an
// empty queue every dialog returns its cancelled sentinel, which makes
// the zero value safe for headless runs.
type ScriptedDialogs struct {
	// Answers feeds OkCancel and YesNo.
	Answers []bool
	// TriState feeds YesNoCancel.
	TriState []*bool
	// Paths feeds FileOpen and FileSaveAs.
	Paths []string

	// Asked records the titles of dialogs shown, in order.
	Asked []string
}

func (s *ScriptedDialogs) nextAnswer() bool {
	if len(s.Answers) == 0 {
		return false
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer
}

func (s *ScriptedDialogs) nextPath() string {
	if len(s.Paths) == 0 {
		return ""
	}
	path := s.Paths[0]
	s.Paths = s.Paths[1:]
	return path
}

func (s *ScriptedDialogs) OkCancel(title, message string) bool {
	s.Asked = append(s.Asked, title)
	return s.nextAnswer()
}

func (s *ScriptedDialogs) YesNo(title, message string) bool {
	s.Asked = append(s.Asked, title)
	return s.nextAnswer()
}

func (s *ScriptedDialogs) YesNoCancel(title, message string) *bool {
	s.Asked = append(s.Asked, title)
	if len(s.TriState) == 0 {
		return nil
	}
	answer := s.TriState[0]
	s.TriState = s.TriState[1:]
	return answer
}

func (s *ScriptedDialogs) FileOpen(title, initialPath string, types []FileType) string {
	s.Asked = append(s.Asked, title)
	return s.nextPath()
}

func (s *ScriptedDialogs) FileSaveAs(title, initialPath string, types []FileType) string {
	s.Asked = append(s.Asked, title)
	return s.nextPath()
}
