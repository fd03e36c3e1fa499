// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/normalizer"
	"fjacquet/budget-projector/internal/planner"
	"fjacquet/budget-projector/internal/render"
	"fjacquet/budget-projector/internal/store"
)

// ScenarioStore is the part of store.ScenarioStore a session needs.
type ScenarioStore interface {
	Load() (*store.Scenario, error)
	Save(*store.Scenario) error
}

var (
	// ErrNoContainer is returned when a command runs before root setup.
	ErrNoContainer = errors.New("application not initialized")
	// ErrNoScenario is returned when saving the built-in scenario.
	ErrNoScenario = errors.New("no scenario file, run init first")
)

// Session is a scenario loaded for projection or editing.
type Session struct {
	Scenario *store.Scenario
	Result   normalizer.Result
	Planner  *planner.Planner
	store    ScenarioStore
}

// Open loads the scenario from st, normalizes it with n and builds a planner
// with newPlanner.
func Open(st ScenarioStore, n *normalizer.Normalizer, newPlanner func(models.Configuration) *planner.Planner) (*Session, error) {
	scenario, err := st.Load()
	if err != nil {
		return nil, err
	}
	result, err := n.Normalize(scenario.RawInput())
	if err != nil {
		return nil, fmt.Errorf("scenario is invalid: %w", err)
	}
	return &Session{
		Scenario: scenario,
		Result:   result,
		Planner:  newPlanner(result.Configuration),
		store:    st,
	}, nil
}

// OpenSession is Open with the container's store, normalizer and engine.
func OpenSession(c *container.Container) (*Session, error) {
	if c == nil {
		return nil, ErrNoContainer
	}
	return Open(c.GetStore(), c.GetNormalizer(), c.NewPlanner)
}

// OpenOrDefault is OpenSession falling back to the seed scenario when no
// scenario file exists yet.
func OpenOrDefault(c *container.Container) (*Session, error) {
	if c == nil {
		return nil, ErrNoContainer
	}
	if c.GetStore().Exists() {
		return OpenSession(c)
	}
	c.GetLogger().Info("No scenario file found, using the default budget",
		logging.F(logging.FieldScenario, c.GetStore().File))
	return Open(seedStore{}, c.GetNormalizer(), c.NewPlanner)
}

// seedStore serves the built-in scenario and refuses to save it.
type seedStore struct{}

func (seedStore) Load() (*store.Scenario, error) {
	return store.Default(), nil
}

func (seedStore) Save(*store.Scenario) error {
	return ErrNoScenario
}

// OpenForEdit is OpenSession for commands that save the scenario back. It
// refuses scenarios with rejected records, which saving would drop.
func OpenForEdit(c *container.Container) (*Session, error) {
	s, err := OpenSession(c)
	if err != nil {
		return nil, err
	}
	if n := len(s.Result.Rejected); n > 0 {
		return nil, fmt.Errorf("scenario has %d invalid record(s), run validate and fix them first: %w",
			n, s.Result.Rejected[0])
	}
	return s, nil
}

// Title returns the scenario title, or the default one.
func (s *Session) Title() string {
	if s.Scenario != nil && s.Scenario.Title != "" {
		return s.Scenario.Title
	}
	return store.DefaultTitle
}

// Save writes the planner's configuration back to the scenario file.
func (s *Session) Save() error {
	return s.store.Save(store.FromConfiguration(s.Title(), s.Planner.Configuration()))
}

// Commit saves the session and prints the recomputed summary to w.
func (s *Session) Commit(w io.Writer, r *render.Renderer) error {
	if err := s.Save(); err != nil {
		return err
	}
	WriteSummary(w, r, s.Planner)
	return nil
}

// WriteIssues prints rejected records and month fallbacks, one per line.
func WriteIssues(w io.Writer, r *render.Renderer, result normalizer.Result) {
	for _, rejected := range result.Rejected {
		fmt.Fprintln(w, r.Issue(rejected))
	}
	for _, fallback := range result.Fallbacks {
		fmt.Fprintln(w, r.Issue(fallback))
	}
}

// WriteSummary prints the summary cards and notes of the planner.
func WriteSummary(w io.Writer, r *render.Renderer, p *planner.Planner) {
	summary := p.Summary()
	fmt.Fprintln(w, r.Cards(summary))
	fmt.Fprint(w, r.Notes(summary))
}

// WriteOutput writes data to path, or to w when path is empty.
func WriteOutput(path string, data []byte, w io.Writer, logger logging.Logger) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil { // #nosec G306 -- reports are meant to be shared
		return fmt.Errorf("error writing output file: %w", err)
	}
	logger.Info("Wrote output file", logging.F(logging.FieldOutputFile, path))
	return nil
}

// ResolveID maps an argument to an item ID. The argument is either an exact
// ID or the 1-based position of the item in ids.
func ResolveID(arg string, ids []string) (string, error) {
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(ids) {
		return ids[n-1], nil
	}
	return "", fmt.Errorf("%q: %w", arg, budgeterror.ErrItemNotFound)
}

// RecurringIDs returns the IDs of the recurring items in order.
func RecurringIDs(cfg models.Configuration) []string {
	ids := make([]string, 0, len(cfg.RecurringItems))
	for _, item := range cfg.RecurringItems {
		ids = append(ids, item.ID)
	}
	return ids
}

// WishlistIDs returns the IDs of the wishlist items in order.
func WishlistIDs(cfg models.Configuration) []string {
	ids := make([]string, 0, len(cfg.WishlistItems))
	for _, item := range cfg.WishlistItems {
		ids = append(ids, item.ID)
	}
	return ids
}
