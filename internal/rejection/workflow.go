package rejection

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Phase is the dialog state. The happy path is Form -> Summary ->
// Submitting -> Closed; a failed submit drops back to Summary.
type Phase string

const (
	PhaseForm       Phase = "FORM"
	PhaseSummary    Phase = "SUMMARY"
	PhaseSubmitting Phase = "SUBMITTING"
	PhaseClosed     Phase = "CLOSED"
)

// Action tags the result handed to the caller on success.
type Action string

const (
	ActionCreated Action = "CREATE_REJECTION"
	ActionDeleted Action = "DELETE_REJECTION"
)

type Result struct {
	Type      Action
	Created   *Request
	DeletedID int64
}

// Workflow drives one rejection dialog: either filing a new rejection
// against an order's delivery items, or confirming deletion of an
// existing one (delete mode skips the form).
type Workflow struct {
	svc      Service
	uploader Uploader
	logger   *zap.Logger

	orderID       string
	deliveryItems []DeliveryItem
	requestedBy   string

	deleteMode bool
	selected   *Request

	phase      Phase
	finalizing bool

	productID   int64
	quantity    int
	date        string
	issue       IssueType
	customIssue string
	remarks     string
	images      []string
}

func NewWorkflow(svc Service, uploader Uploader, orderID string, items []DeliveryItem, requestedBy string, logger *zap.Logger) *Workflow {
	return &Workflow{
		svc:           svc,
		uploader:      uploader,
		logger:        logger,
		orderID:       orderID,
		deliveryItems: items,
		requestedBy:   requestedBy,
		phase:         PhaseForm,
	}
}

// NewDeleteWorkflow opens directly on the summary as a read-only
// confirmation of the rejection selected for deletion.
func NewDeleteWorkflow(svc Service, selected *Request, logger *zap.Logger) *Workflow {
	return &Workflow{
		svc:        svc,
		logger:     logger,
		deleteMode: true,
		selected:   selected,
		phase:      PhaseSummary,
	}
}

func (w *Workflow) Phase() Phase     { return w.phase }
func (w *Workflow) Finalizing() bool { return w.finalizing }
func (w *Workflow) Images() []string { return w.images }
func (w *Workflow) Quantity() int    { return w.quantity }

func (w *Workflow) SetProduct(productID int64) { w.productID = productID }
func (w *Workflow) SetDate(date string)        { w.date = date }
func (w *Workflow) SetIssue(issue IssueType)   { w.issue = issue }
func (w *Workflow) SetCustomIssue(text string) { w.customIssue = text }
func (w *Workflow) SetRemarks(text string)     { w.remarks = text }

// SetQuantity coerces anything below one up to one.
func (w *Workflow) SetQuantity(q int) {
	if q < 1 {
		q = 1
	}
	w.quantity = q
}

// SetQuantityInput parses raw form input; non-numeric values normalize
// to one, like SetQuantity does for values below one.
func (w *Workflow) SetQuantityInput(raw string) {
	q, err := strconv.Atoi(raw)
	if err != nil {
		q = 1
	}
	w.SetQuantity(q)
}

// ImageFile is one file picked for upload.
type ImageFile struct {
	Name string
	Data []byte
}

// UploadImages pushes the files one by one, appending each returned URL
// as soon as that upload finishes so partial progress stays visible. A
// failed upload stops the batch but keeps what already succeeded.
func (w *Workflow) UploadImages(ctx context.Context, files []ImageFile) error {
	for _, f := range files {
		url, err := w.uploader.UploadImage(ctx, f.Name, f.Data)
		if err != nil {
			return fmt.Errorf("upload %s: %w", f.Name, err)
		}
		w.images = append(w.images, url)
	}
	return nil
}

func (w *Workflow) RemoveImage(index int) {
	if index < 0 || index >= len(w.images) {
		return
	}
	w.images = append(w.images[:index], w.images[index+1:]...)
}

func (w *Workflow) hasDeliveryItem(productID int64) bool {
	for _, item := range w.deliveryItems {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (w *Workflow) formComplete() bool {
	if w.productID == 0 || w.quantity < 1 || w.date == "" || w.issue == "" {
		return false
	}
	if !w.hasDeliveryItem(w.productID) {
		return false
	}
	if w.issue == IssueOthers && w.customIssue == "" {
		return false
	}
	return true
}

// Save moves Form to Summary when every required field is present.
// Otherwise it is a no-op and the user stays on the form.
func (w *Workflow) Save() bool {
	if w.phase != PhaseForm || !w.formComplete() {
		return false
	}
	w.phase = PhaseSummary
	return true
}

// Confirm submits from the summary. In delete mode it deletes the
// selected rejection; otherwise it files the new one. Failures return
// the workflow to the summary with submit re-enabled.
func (w *Workflow) Confirm(ctx context.Context) (*Result, error) {
	if w.phase != PhaseSummary {
		return nil, fmt.Errorf("confirm is only valid from the summary, current phase %s", w.phase)
	}
	w.phase = PhaseSubmitting
	w.finalizing = true

	if w.deleteMode {
		return w.confirmDelete(ctx)
	}
	return w.confirmCreate(ctx)
}

func (w *Workflow) confirmDelete(ctx context.Context) (*Result, error) {
	if err := w.svc.DeleteRejectionRequest(ctx, w.selected.ID); err != nil {
		w.logger.Error("Failed to delete rejection request",
			zap.Int64("rejection_id", w.selected.ID), zap.Error(err))
		w.phase = PhaseSummary
		w.finalizing = false
		return nil, err
	}

	w.phase = PhaseClosed
	w.finalizing = false
	return &Result{Type: ActionDeleted, DeletedID: w.selected.ID}, nil
}

func (w *Workflow) confirmCreate(ctx context.Context) (*Result, error) {
	remarks := w.remarks
	if w.issue == IssueOthers {
		remarks = w.customIssue
	}

	payload := CreateRequest{
		ProductID:     w.productID,
		Quantity:      w.quantity,
		Images:        w.images,
		IssueType:     w.issue,
		RequestedDate: w.date + "T00:00:00",
		RequestedBy:   w.requestedBy,
		Remarks:       remarks,
	}

	created, err := w.svc.CreateRejectionRequest(ctx, w.orderID, payload)
	if err != nil {
		w.logger.Error("Failed to create rejection request",
			zap.String("order_id", w.orderID), zap.Error(err))
		w.phase = PhaseSummary
		w.finalizing = false
		return nil, err
	}

	w.resetForm()
	w.phase = PhaseClosed
	w.finalizing = false
	return &Result{Type: ActionCreated, Created: created}, nil
}

// Cancel backs out one step. From a non-delete summary it returns to the
// form with entered values preserved; from the form, or from a delete
// confirmation, it closes the dialog.
func (w *Workflow) Cancel() {
	if w.phase == PhaseSummary && !w.deleteMode {
		w.phase = PhaseForm
		return
	}
	w.Close()
}

// Close shuts the dialog and always clears the submitting flag so a
// reopened dialog never shows stale loading state.
func (w *Workflow) Close() {
	w.phase = PhaseClosed
	w.finalizing = false
}

func (w *Workflow) resetForm() {
	w.productID = 0
	w.quantity = 0
	w.date = ""
	w.issue = ""
	w.customIssue = ""
	w.remarks = ""
	w.images = nil
}
