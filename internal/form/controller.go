package form

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	appDomain "scholarhub-backend/internal/domain/application"
	"scholarhub-backend/internal/infrastructure/logger"
)

// Wizard steps. Each owns a disjoint slice of the payload; Review re-checks
// everything.
const (
	StepPersonal = iota
	StepAddress
	StepAcademic
	StepFamily
	StepFinancial
	StepAdditional
	StepDocuments
	StepReview

	stepCount = 8
)

const defaultDebounce = 2 * time.Second

// Controller drives the eight-step application wizard: per-step validation,
// forward-progress gating, debounced two-tier draft persistence and final
// submission. Safe for use from the UI goroutine plus the internal timer.
type Controller struct {
	mu sync.Mutex

	scholarshipID string
	payload       appDomain.Payload
	current       int
	maxReached    int

	errors            map[int][]appDomain.FieldError
	hasUnsavedChanges bool
	lastSavedAt       *time.Time

	validate *validator.Validate
	local    LocalStore
	remote   RemoteStore
	submit   Submitter
	log      logger.Logger

	debounce time.Duration
	timer    *time.Timer
	closed   bool
}

// Config wires the controller's collaborators. Debounce defaults to 2s when
// zero; tests shorten it.
type Config struct {
	ScholarshipID string
	Local         LocalStore
	Remote        RemoteStore
	Submitter     Submitter
	Log           logger.Logger
	Debounce      time.Duration
}

func NewController(cfg Config) *Controller {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.Log == nil {
		cfg.Log = logger.NewNop()
	}
	if cfg.Local == nil {
		cfg.Local = NewMemoryStore()
	}
	return &Controller{
		scholarshipID: cfg.ScholarshipID,
		payload:       appDomain.Payload{ScholarshipID: cfg.ScholarshipID},
		errors:        make(map[int][]appDomain.FieldError),
		validate:      appDomain.NewValidate(),
		local:         cfg.Local,
		remote:        cfg.Remote,
		submit:        cfg.Submitter,
		log:           cfg.Log,
		debounce:      cfg.Debounce,
	}
}

// Load restores a saved draft: local tier first (always available), then the
// remote tier overlaid on top when reachable.
func (c *Controller) Load(ctx context.Context) {
	local, _ := c.local.Load(c.scholarshipID)

	var remote *Snapshot
	if c.remote != nil {
		var err error
		remote, err = c.remote.Load(ctx, c.scholarshipID)
		if err != nil {
			c.log.Warn("remote draft load failed", map[string]interface{}{
				"scholarshipId": c.scholarshipID,
				"error":         err.Error(),
			})
			remote = nil
		}
	}

	snap := merge(local, remote)
	if snap == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = snap.Payload
	c.payload.ScholarshipID = c.scholarshipID
	if snap.StepIndex >= 0 && snap.StepIndex < stepCount {
		c.current = snap.StepIndex
		c.maxReached = snap.StepIndex
	}
	if !snap.SavedAt.IsZero() {
		saved := snap.SavedAt
		c.lastSavedAt = &saved
	}
}

func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) HasUnsavedChanges() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasUnsavedChanges
}

func (c *Controller) LastSavedAt() *time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSavedAt
}

// StepErrors returns the field errors from the last validation of a step.
func (c *Controller) StepErrors(step int) []appDomain.FieldError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[step]
}

// Payload returns a copy of the current form state.
func (c *Controller) Payload() appDomain.Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payload
}

// ValidateStep checks only the fields owned by a step and records their
// errors for display. Review (step 7) validates the whole document.
func (c *Controller) ValidateStep(step int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateStepLocked(step)
}

func (c *Controller) validateStepLocked(step int) bool {
	if step < 0 || step >= stepCount {
		return false
	}
	if step == StepReview {
		ok := true
		for s := StepPersonal; s < StepReview; s++ {
			if !c.validateStepLocked(s) {
				ok = false
			}
		}
		return ok
	}

	var errs []appDomain.FieldError
	switch step {
	case StepPersonal:
		errs = c.validateSection("personalInfo", c.payload.PersonalInfo)
	case StepAddress:
		errs = c.validateSection("addressInfo", c.payload.AddressInfo)
	case StepAcademic:
		errs = c.validateSection("academicInfo", c.payload.AcademicInfo)
	case StepFamily:
		errs = c.validateSection("familyInfo", c.payload.FamilyInfo)
	case StepFinancial:
		errs = c.validateSection("financialInfo", c.payload.FinancialInfo)
	case StepAdditional:
		errs = c.validateSection("additionalInfo", c.payload.AdditionalInfo)
	case StepDocuments:
		if len(c.payload.Documents) == 0 {
			errs = []appDomain.FieldError{{Field: "documents", Message: "at least one document is required"}}
		} else {
			for _, d := range c.payload.Documents {
				if err := c.validate.Struct(d); err != nil {
					errs = append(errs, appDomain.ToFieldErrors(err)...)
				}
			}
		}
	}

	if len(errs) == 0 {
		delete(c.errors, step)
		return true
	}
	c.errors[step] = errs
	return false
}

// validateSection validates one nested section; a section the user never
// opened fails with a single "is required" error rather than a field list.
func (c *Controller) validateSection(name string, section interface{}) []appDomain.FieldError {
	switch v := section.(type) {
	case *appDomain.PersonalInfo:
		if v == nil {
			return []appDomain.FieldError{{Field: name, Message: "is required"}}
		}
	case *appDomain.AddressInfo:
		if v == nil {
			return []appDomain.FieldError{{Field: name, Message: "is required"}}
		}
	case *appDomain.AcademicInfo:
		if v == nil {
			return []appDomain.FieldError{{Field: name, Message: "is required"}}
		}
	case *appDomain.FamilyInfo:
		if v == nil {
			return []appDomain.FieldError{{Field: name, Message: "is required"}}
		}
	case *appDomain.FinancialInfo:
		if v == nil {
			return []appDomain.FieldError{{Field: name, Message: "is required"}}
		}
	case *appDomain.AdditionalInfo:
		if v == nil {
			return []appDomain.FieldError{{Field: name, Message: "is required"}}
		}
	}
	if err := c.validate.Struct(section); err != nil {
		return appDomain.ToFieldErrors(err)
	}
	return nil
}

// Advance validates the current step first; on failure the step does not
// change and the errors stay visible.
func (c *Controller) Advance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.validateStepLocked(c.current) {
		return false
	}
	if c.current < stepCount-1 {
		c.current++
		if c.current > c.maxReached {
			c.maxReached = c.current
		}
	}
	return true
}

// Retreat moves one step back, clamped at the first step.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current > 0 {
		c.current--
	}
}

// JumpToStep allows backward/lateral navigation to any visited step; jumping
// ahead of the furthest validated step is a no-op.
func (c *Controller) JumpToStep(step int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if step < 0 || step >= stepCount || step > c.maxReached {
		return false
	}
	c.current = step
	return true
}

// Section setters. Every change marks the draft dirty and re-arms the
// debounce timer.

func (c *Controller) SetPersonalInfo(v appDomain.PersonalInfo) {
	c.mutate(func() { c.payload.PersonalInfo = &v })
}

func (c *Controller) SetAddressInfo(v appDomain.AddressInfo) {
	c.mutate(func() { c.payload.AddressInfo = &v })
}

func (c *Controller) SetAcademicInfo(v appDomain.AcademicInfo) {
	c.mutate(func() { c.payload.AcademicInfo = &v })
}

func (c *Controller) SetFamilyInfo(v appDomain.FamilyInfo) {
	c.mutate(func() { c.payload.FamilyInfo = &v })
}

func (c *Controller) SetFinancialInfo(v appDomain.FinancialInfo) {
	c.mutate(func() { c.payload.FinancialInfo = &v })
}

func (c *Controller) SetAdditionalInfo(v appDomain.AdditionalInfo) {
	c.mutate(func() { c.payload.AdditionalInfo = &v })
}

func (c *Controller) AddDocument(d appDomain.DocumentRef) {
	c.mutate(func() { c.payload.Documents = append(c.payload.Documents, d) })
}

func (c *Controller) RemoveDocument(documentID string) {
	c.mutate(func() {
		kept := c.payload.Documents[:0]
		for _, d := range c.payload.Documents {
			if d.DocumentID != documentID {
				kept = append(kept, d)
			}
		}
		c.payload.Documents = kept
	})
}

func (c *Controller) mutate(apply func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	apply()
	c.hasUnsavedChanges = true
	c.armTimerLocked()
}

func (c *Controller) armTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.flushDraft)
}

// flushDraft persists the current snapshot: local tier synchronously, remote
// tier in the background. Remote failures are logged only; draft saving is
// best-effort.
func (c *Controller) flushDraft() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	snap := Snapshot{
		Payload:   c.payload,
		StepIndex: c.current,
		SavedAt:   time.Now().UTC(),
	}
	c.local.Save(c.scholarshipID, snap)
	c.hasUnsavedChanges = false
	saved := snap.SavedAt
	c.lastSavedAt = &saved
	remote := c.remote
	scholarshipID := c.scholarshipID
	c.mu.Unlock()

	if remote == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := remote.Save(ctx, scholarshipID, snap); err != nil {
			c.log.Warn("remote draft save failed", map[string]interface{}{
				"scholarshipId": scholarshipID,
				"error":         err.Error(),
			})
		}
	}()
}

// Flush forces a pending debounced save to run now.
func (c *Controller) Flush() {
	c.mu.Lock()
	dirty := c.hasUnsavedChanges
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	if dirty {
		c.flushDraft()
	}
}

// Submit validates the whole document and, only if every step passes, sends
// it to the submission service. Success clears both draft tiers; any failure
// keeps the draft so the user can retry without re-entering data.
func (c *Controller) Submit(ctx context.Context) (*SubmitResult, error) {
	c.mu.Lock()
	ok := c.validateStepLocked(StepReview)
	if !ok {
		var fields []appDomain.FieldError
		for s := StepPersonal; s < StepReview; s++ {
			fields = append(fields, c.errors[s]...)
		}
		c.mu.Unlock()
		return nil, &appDomain.ValidationError{Fields: fields}
	}
	// Stop any pending autosave before the request: a stale save must not
	// race the post-submit clearance.
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	payload := c.payload
	c.mu.Unlock()

	res, err := c.submit.Submit(ctx, payload)
	if err != nil {
		// Draft intact; re-arm nothing, the user may edit and retry.
		return nil, err
	}

	c.local.Clear(c.scholarshipID)
	if c.remote != nil {
		if clearErr := c.remote.Clear(ctx, c.scholarshipID); clearErr != nil {
			c.log.Warn("remote draft clear failed", map[string]interface{}{
				"scholarshipId": c.scholarshipID,
				"error":         clearErr.Error(),
			})
		}
	}

	c.mu.Lock()
	c.hasUnsavedChanges = false
	c.lastSavedAt = nil
	c.mu.Unlock()
	return res, nil
}

// Close cancels the debounce timer, flushing a dirty draft to the local tier
// first so teardown never drops typed data.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	dirty := c.hasUnsavedChanges
	if dirty {
		snap := Snapshot{
			Payload:   c.payload,
			StepIndex: c.current,
			SavedAt:   time.Now().UTC(),
		}
		c.local.Save(c.scholarshipID, snap)
		c.hasUnsavedChanges = false
	}
	c.closed = true
	c.mu.Unlock()
}
