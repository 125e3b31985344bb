package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/mitchellh/mapstructure"

	"github.com/Wilsonthoma/Ecommerce-sub002/config"
	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	e "github.com/Wilsonthoma/Ecommerce-sub002/rest/errors"
	m "github.com/Wilsonthoma/Ecommerce-sub002/rest/models"
	"github.com/Wilsonthoma/Ecommerce-sub002/rest/screens"
)

var (
	inputValidator *validator.Validate
	trans          ut.Translator
)

func init() {
	inputValidator = validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(inputValidator, trans)

	_ = inputValidator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		translator, _ := ut.T("required", fe.Field())
		return translator
	})

	_ = inputValidator.RegisterTranslation("oneof", trans, func(ut ut.Translator) error {
		return ut.Add("oneof", "{0} must be a supported value", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		translator, _ := ut.T("oneof", fe.Field())
		return translator
	})
}

// GetScreen renders one list screen. Search, filter, sort and pagination
// state arrive as query parameters; the collection snapshot is refreshed
// from the store API on every render. An upstream failure degrades to an
// empty table with zeroed statistics rather than an error page.
func (s *routeList) GetScreen(w http.ResponseWriter, r *http.Request) {
	screen, ok := s.screen(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	view := screen.View

	view.SubmitQuery(query.Get("q"))
	view.SetFilters(screen.Definition.CriteriaFromQuery(query, s.naming))

	if sortParam := query.Get("sort"); sortParam != "" {
		spec, found := screen.Definition.SortSpecFor(sortParam, s.naming)
		if !found {
			RespondWithError(w, fmt.Errorf("cannot sort by '%s'", sortParam), http.StatusBadRequest)
			return
		}
		spec.Direction = directionFromQuery(query.Get("dir"))
		view.SetSort(spec)
	}

	if pageSizeParam := query.Get("page_size"); pageSizeParam != "" {
		pageSize, err := strconv.Atoi(pageSizeParam)
		if err != nil || !pageSizeOffered(pageSize, s.cfg.PageSizeOptions()) {
			RespondWithError(w, fmt.Errorf("page size '%s' is not offered", pageSizeParam), http.StatusBadRequest)
			return
		}
		view.SetPageSize(pageSize)
	}

	if pageParam := query.Get("page"); pageParam != "" {
		// Out of range pages clamp at render time, only garbage is rejected.
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			RespondWithError(w, fmt.Errorf("invalid page '%s'", pageParam), http.StatusBadRequest)
			return
		}
		view.SetPage(page)
	}

	if err := view.Refresh(r.Context()); err != nil {
		s.logger.Warn("screen refresh failed, rendering empty set",
			"screen", screen.Definition.Name,
			"error", err)
	}

	RespondJSONObjectWithCode(w, http.StatusOK, s.screenResponse(screen))
}

// PostSelection mutates the selection state of a screen and returns the
// re-rendered snapshot so the front end can update its header checkbox.
func (s *routeList) PostSelection(w http.ResponseWriter, r *http.Request) {
	screen, ok := s.screen(w, r)
	if !ok {
		return
	}

	var selection m.SelectionRequest
	if err := parseAndValidatePayload(&selection, r); err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	view := screen.View
	switch selection.Action {
	case "toggle":
		view.Toggle(selection.ID)
	case "select_all":
		view.SelectAll()
	case "clear":
		view.ClearSelection()
	}

	RespondJSONObjectWithCode(w, http.StatusOK, s.screenResponse(screen))
}

// PostBulk fans one store API mutation out over a set of record ids and
// reports a result per id. A partial failure is visible as such in the
// response, never collapsed into a single error.
func (s *routeList) PostBulk(w http.ResponseWriter, r *http.Request) {
	screen, ok := s.screen(w, r)
	if !ok {
		return
	}

	var bulk m.BulkRequest
	if err := parseAndValidatePayload(&bulk, r); err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	op, err := s.bulkOperation(screen.Definition.Resource, &bulk)
	if err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	results := s.bulkRunner.Run(r.Context(), bulk.IDs, op)
	succeeded, failed := dataview.Summarize(results)

	s.logger.Info("bulk action completed",
		"screen", screen.Definition.Name,
		"action", bulk.Action,
		"succeeded", succeeded,
		"failed", failed)

	RespondJSONObjectWithCode(w, http.StatusOK, m.BulkResponse{
		Results:   results,
		Succeeded: succeeded,
		Failed:    failed,
	})
}

func (s *routeList) bulkOperation(resource string, bulk *m.BulkRequest) (dataview.Operation, error) {
	switch bulk.Action {
	case "delete":
		if !s.cfg.SupportedBulkActions().IsSupported(config.BulkDelete) {
			return nil, errors.New("bulk delete is not enabled")
		}
		return func(ctx context.Context, id string) error {
			return s.client.Delete(ctx, resource, id)
		}, nil
	case "set_status":
		if !s.cfg.SupportedBulkActions().IsSupported(config.BulkSetStatus) {
			return nil, errors.New("bulk status change is not enabled")
		}
		var change m.StatusChange
		if err := mapstructure.Decode(bulk.Fields, &change); err != nil {
			return nil, err
		}
		if err := inputValidator.Struct(&change); err != nil {
			return nil, e.TranslateValidatorError(err, trans)
		}
		fields := map[string]interface{}{"status": change.Status}
		return func(ctx context.Context, id string) error {
			return s.client.Update(ctx, resource, id, fields)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported bulk action '%s'", bulk.Action)
	}
}

// PatchRecord passes a partial field update for a single record through to
// the store API.
func (s *routeList) PatchRecord(w http.ResponseWriter, r *http.Request) {
	screen, ok := s.screen(w, r)
	if !ok {
		return
	}

	recordID := s.params(r, "recordId")

	var update m.RecordUpdate
	if err := parseAndValidatePayload(&update, r); err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	if err := s.client.Update(r.Context(), screen.Definition.Resource, recordID, update.Fields); err != nil {
		s.respondWithStoreError(w, screen.Definition.Name, recordID, err)
		return
	}

	RespondJSONObjectWithCode(w, http.StatusOK, m.MutationResponse{Success: true})
}

// DeleteRecord removes a single record through the store API.
func (s *routeList) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	screen, ok := s.screen(w, r)
	if !ok {
		return
	}

	recordID := s.params(r, "recordId")

	if err := s.client.Delete(r.Context(), screen.Definition.Resource, recordID); err != nil {
		s.respondWithStoreError(w, screen.Definition.Name, recordID, err)
		return
	}

	RespondJSONObjectWithCode(w, http.StatusNoContent, nil)
}

func (s *routeList) screen(w http.ResponseWriter, r *http.Request) (*screens.Screen, bool) {
	name := s.params(r, "screenName")
	screen, found := s.screens[name]
	if !found {
		RespondWithError(w, fmt.Errorf("unknown screen '%s'", name), http.StatusNotFound)
		return nil, false
	}
	return screen, true
}

func (s *routeList) screenResponse(screen *screens.Screen) m.ScreenResponse {
	rendered := screen.View.Render()

	rows := make([]m.ScreenRow, len(rendered.Rows))
	for i, row := range rendered.Rows {
		rows[i] = m.ScreenRow{Record: row.Record, Selected: row.Selected}
	}

	return m.ScreenResponse{
		Columns:       screen.Definition.ColumnModels(s.naming),
		Rows:          rows,
		CurrentPage:   rendered.CurrentPage,
		TotalPages:    rendered.TotalPages,
		TotalItems:    rendered.TotalItems,
		PageSize:      rendered.PageSize,
		SelectedCount: rendered.SelectedCount,
		Indeterminate: rendered.Indeterminate,
		FetchFailed:   rendered.FetchFailed,
	}
}

func (s *routeList) respondWithStoreError(w http.ResponseWriter, screenName string, recordID string, err error) {
	s.logger.Warn("store mutation failed",
		"screen", screenName,
		"id", recordID,
		"error", err)

	switch err.(type) {
	case *e.NotFoundError:
		RespondWithError(w, err, http.StatusNotFound)
	case *e.UpstreamError:
		RespondWithError(w, err, http.StatusBadGateway)
	default:
		RespondWithError(w, err, http.StatusInternalServerError)
	}
}

func directionFromQuery(dir string) dataview.Direction {
	if dir == "asc" {
		return dataview.Ascending
	}
	return dataview.Descending
}

func pageSizeOffered(pageSize int, options []int) bool {
	if len(options) == 0 {
		options = dataview.DefaultPageSizeOptions
	}
	for _, option := range options {
		if option == pageSize {
			return true
		}
	}
	return false
}

func parseAndValidatePayload(obj interface{}, r *http.Request) error {
	if err := json.NewDecoder(r.Body).Decode(obj); err != nil {
		return err
	}

	if err := inputValidator.Struct(obj); err != nil {
		return e.TranslateValidatorError(err, trans)
	}

	return nil
}
