package modal

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
)

// WireSession implements the orchestrator's collaborators over the htmx
// wire: DOM mutations become an out-of-band swap fragment and events
// become an HX-Trigger header, both emitted in one response.
//
// One session serves one request. Last-writer-wins: retargeting the same
// selector twice leaves only the second URL in the response, and a
// selector is shown at most once.
type WireSession struct {
	targets     map[string]string
	reprocessed map[string]bool
	shown       map[string]bool
	events      []wireEvent
}

type wireEvent struct {
	Selector string
	Event    string
}

var (
	_ PartialUpdater  = (*WireSession)(nil)
	_ DialogFactory   = (*WireSession)(nil)
	_ NotificationBus = (*WireSession)(nil)
)

// NewWireSession creates an empty session.
func NewWireSession() *WireSession {
	return &WireSession{
		targets:     make(map[string]string),
		reprocessed: make(map[string]bool),
		shown:       make(map[string]bool),
	}
}

// SetFetchTarget implements PartialUpdater.
func (s *WireSession) SetFetchTarget(selector, url string) {
	s.targets[selector] = url
}

// Reprocess implements PartialUpdater. On the wire this is a no-op beyond
// marking the element dirty: the swap itself makes htmx re-scan the
// element's attributes.
func (s *WireSession) Reprocess(selector string) {
	s.reprocessed[selector] = true
}

// Construct implements DialogFactory.
func (s *WireSession) Construct(selector string) Dialog {
	return wireDialog{session: s, selector: selector}
}

// Trigger implements NotificationBus.
func (s *WireSession) Trigger(selector, event string) {
	s.events = append(s.events, wireEvent{Selector: selector, Event: event})
}

type wireDialog struct {
	session  *WireSession
	selector string
}

func (d wireDialog) Show() {
	d.session.shown[d.selector] = true
}

// FetchTarget returns the URL a selector is currently bound to.
func (s *WireSession) FetchTarget(selector string) string {
	return s.targets[selector]
}

// ShownCount returns how many distinct dialogs the response will show.
func (s *WireSession) ShownCount() int {
	return len(s.shown)
}

// WriteResponse emits the accumulated mutations: one out-of-band fragment
// per shown dialog and an HX-Trigger header carrying the events.
func (s *WireSession) WriteResponse(w http.ResponseWriter) error {
	if len(s.events) > 0 {
		triggers := make(map[string]map[string]string, len(s.events))
		for _, e := range s.events {
			triggers[e.Event] = map[string]string{"target": e.Selector}
		}
		header, err := json.Marshal(triggers)
		if err != nil {
			return fmt.Errorf("encoding trigger header: %w", err)
		}
		w.Header().Set("HX-Trigger", string(header))
	}

	var body strings.Builder
	for selector := range s.shown {
		body.WriteString(s.renderFragment(selector))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(body.String()))
	return err
}

// renderFragment renders the out-of-band container swap. The hx-get target
// fetches once the opened event fires; the open class makes the dialog
// visible.
func (s *WireSession) renderFragment(selector string) string {
	id := strings.TrimPrefix(selector, "#")
	url := html.EscapeString(s.targets[selector])
	return fmt.Sprintf(
		`<div id="%s" class="modal is-open" hx-swap-oob="true"`+
			` hx-get="%s" hx-trigger="%s from:body" hx-target="#%s-body" hx-swap="innerHTML">`+
			`<div class="modal-dialog"><div id="%s-body" class="modal-body"></div></div></div>`,
		id, url, EventOpened, id, id,
	)
}
