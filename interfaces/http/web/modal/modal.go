// Package modal owns the lifecycle of the page's single edit dialog.
//
// The dialog element lives in the page shell; opening it means pointing its
// fetch target at an edit-form URL, letting the partial-update mechanism
// pick the new target up, showing the dialog widget and notifying listeners
// that it is open. The collaborators that actually touch the page are
// injected, so the orchestration logic is independent of the wire format.
package modal

import (
	"go.uber.org/zap"
)

// ContainerSelector is the singleton modal container's selector. The page
// shell guarantees an element matching it exists.
const ContainerSelector = "#editModal"

// EventOpened is emitted on the container's selector once the dialog is
// open; listeners use it to start the content fetch.
const EventOpened = "modal:opened"

// PartialUpdater drives the fetch-on-open partial-update mechanism.
type PartialUpdater interface {
	// SetFetchTarget points the element at a new URL, overwriting any
	// prior value.
	SetFetchTarget(selector, url string)
	// Reprocess re-scans the element so a changed fetch target takes
	// effect. Idempotent.
	Reprocess(selector string)
}

// Dialog is an open-able dialog widget handle.
type Dialog interface {
	Show()
}

// DialogFactory constructs a dialog widget bound to an element.
type DialogFactory interface {
	Construct(selector string) Dialog
}

// NotificationBus delivers events scoped to a selector.
type NotificationBus interface {
	Trigger(selector, event string)
}

// Orchestrator sequences the modal-open steps. It holds no per-click
// state; a second open retargets the same container rather than stacking
// dialogs.
type Orchestrator struct {
	selector string
	updater  PartialUpdater
	dialogs  DialogFactory
	bus      NotificationBus
	logger   *zap.Logger
}

// NewOrchestrator creates an orchestrator bound to the given container
// selector.
func NewOrchestrator(selector string, updater PartialUpdater, dialogs DialogFactory, bus NotificationBus, logger *zap.Logger) *Orchestrator {
	if selector == "" {
		selector = ContainerSelector
	}
	return &Orchestrator{
		selector: selector,
		updater:  updater,
		dialogs:  dialogs,
		bus:      bus,
		logger:   logger,
	}
}

// OpenEditModal retargets the modal container at url and opens it. The
// steps run strictly in sequence; any asynchronous fetch the notification
// kicks off happens after this returns.
func (o *Orchestrator) OpenEditModal(url string) {
	o.logger.Debug("opening edit modal",
		zap.String("selector", o.selector),
		zap.String("url", url),
	)

	o.updater.SetFetchTarget(o.selector, url)
	o.updater.Reprocess(o.selector)
	o.dialogs.Construct(o.selector).Show()
	o.bus.Trigger(o.selector, EventOpened)
}
