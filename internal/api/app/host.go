package app

import "fmt"

// SubInputEvent carries the current contents of the host's quick-input field.
type SubInputEvent struct {
	Text string `json:"text"`
}

// Toast shows a host notification. It reports false instead of failing.
func (a *TranslatorAPI) Toast(msg string) bool {
	return a.bestEffort("toast", func() error { return a.d.Host.Notify(msg) })
}

// BindSubInput mirrors the host quick-input field into onChange.
func (a *TranslatorAPI) BindSubInput(onChange func(SubInputEvent), placeholder string) bool {
	if onChange == nil {
		return false
	}
	return a.bestEffort("bind sub input", func() error {
		return a.d.Host.SetSubInput(func(text string) { onChange(SubInputEvent{Text: text}) }, placeholder)
	})
}

func (a *TranslatorAPI) SetSubInputValue(value string) bool {
	return a.bestEffort("set sub input", func() error { return a.d.Host.SetSubInputValue(value) })
}

func (a *TranslatorAPI) bestEffort(op string, fn func() error) (ok bool) {
	if a.d.Host == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			a.d.Log.Debugw("host call panicked", "op", op, "panic", fmt.Sprint(r))
			ok = false
		}
	}()
	if err := fn(); err != nil {
		a.d.Log.Debugw("host call failed", "op", op, "error", err)
		return false
	}
	return true
}
