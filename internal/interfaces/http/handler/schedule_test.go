package handler

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	scheduleapp "github.com/packtrack/backend/internal/application/schedule"
	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/schedule"
	"github.com/packtrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepository struct {
	events     map[int64]*schedule.Event
	links      map[int64][]int64
	belongings *fakeBelongingRepository
	nextID     int64
}

func newFakeEventRepository(belongings *fakeBelongingRepository) *fakeEventRepository {
	return &fakeEventRepository{
		events:     make(map[int64]*schedule.Event),
		links:      make(map[int64][]int64),
		belongings: belongings,
		nextID:     1,
	}
}

func (m *fakeEventRepository) FindByID(ctx context.Context, id int64) (*schedule.Event, error) {
	if e, ok := m.events[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (m *fakeEventRepository) FindAll(ctx context.Context, dayType schedule.DayType) ([]schedule.AnnotatedEvent, error) {
	result := make([]schedule.AnnotatedEvent, 0, len(m.events))
	for id, e := range m.events {
		if dayType != "" && e.DayType != dayType {
			continue
		}
		annotated := schedule.AnnotatedEvent{Event: *e, BelongingIDs: []int64{}, BelongingNames: []string{}}
		for _, bid := range m.links[id] {
			annotated.BelongingIDs = append(annotated.BelongingIDs, bid)
			if b, ok := m.belongings.items[bid]; ok {
				annotated.BelongingNames = append(annotated.BelongingNames, b.Name)
			}
		}
		result = append(result, annotated)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

func (m *fakeEventRepository) Save(ctx context.Context, e *schedule.Event, belongingIDs []int64) error {
	e.ID = m.nextID
	m.nextID++
	copied := *e
	m.events[e.ID] = &copied
	m.links[e.ID] = append([]int64(nil), belongingIDs...)
	return nil
}

func (m *fakeEventRepository) Update(ctx context.Context, e *schedule.Event, belongingIDs []int64) error {
	if _, ok := m.events[e.ID]; !ok {
		return shared.ErrNotFound
	}
	copied := *e
	m.events[e.ID] = &copied
	m.links[e.ID] = append([]int64(nil), belongingIDs...)
	return nil
}

func (m *fakeEventRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.events, id)
	delete(m.links, id)
	return nil
}

func (m *fakeEventRepository) FindLinkedBelongings(ctx context.Context, eventID int64) ([]belonging.Belonging, error) {
	result := make([]belonging.Belonging, 0)
	for _, bid := range m.links[eventID] {
		if b, ok := m.belongings.items[bid]; ok {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func setupScheduleRouter(events *fakeEventRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewScheduleHandler(scheduleapp.NewEventService(events, noopInvalidator{}))

	router := gin.New()
	api := router.Group("/api/schedule")
	api.GET("/events", h.List)
	api.GET("/events/:id", h.GetByID)
	api.POST("/events", h.Create)
	api.PUT("/events/:id", h.Update)
	api.DELETE("/events/:id", h.Delete)
	api.GET("/events/:id/belongings", h.LinkedBelongings)
	return router
}

func TestScheduleHandlerCreate(t *testing.T) {
	t.Run("creates with links and returns 201", func(t *testing.T) {
		belongings := newFakeBelongingRepository()
		seedRepo(t, belongings, "Plates", "kitchen", nil, belonging.StatusUnpacked)
		events := newFakeEventRepository(belongings)
		router := setupScheduleRouter(events)

		w := doJSON(t, router, http.MethodPost, "/api/schedule/events", gin.H{
			"title":         "Pack kitchen",
			"start_time":    "09:00",
			"end_time":      "10:30",
			"day_type":      "packing",
			"belonging_ids": []int64{1},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Pack kitchen", data["title"])
		assert.Equal(t, []interface{}{float64(1)}, data["belonging_ids"])
		assert.Equal(t, []int64{1}, events.links[1])
	})

	t.Run("rejects an unknown day type at binding", func(t *testing.T) {
		router := setupScheduleRouter(newFakeEventRepository(newFakeBelongingRepository()))

		w := doJSON(t, router, http.MethodPost, "/api/schedule/events", gin.H{
			"title": "X", "start_time": "09:00", "end_time": "10:00", "day_type": "someday",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed time in the domain", func(t *testing.T) {
		router := setupScheduleRouter(newFakeEventRepository(newFakeBelongingRepository()))

		w := doJSON(t, router, http.MethodPost, "/api/schedule/events", gin.H{
			"title": "X", "start_time": "9am", "end_time": "10:00", "day_type": "packing",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})
}

func TestScheduleHandlerList(t *testing.T) {
	belongings := newFakeBelongingRepository()
	seedRepo(t, belongings, "Bedsheets", "bedding", nil, belonging.StatusPacked)
	events := newFakeEventRepository(belongings)
	router := setupScheduleRouter(events)

	for _, spec := range []struct {
		title, start, end string
		dayType           string
		links             []int64
	}{
		{"Unload truck", "08:00", "09:30", "move-in", []int64{1}},
		{"Pack kitchen", "09:00", "10:30", "packing", nil},
	} {
		w := doJSON(t, router, http.MethodPost, "/api/schedule/events", gin.H{
			"title": spec.title, "start_time": spec.start, "end_time": spec.end,
			"day_type": spec.dayType, "belonging_ids": spec.links,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("orders by start time and annotates links", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/schedule/events", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		items := resp.Data.([]interface{})
		require.Len(t, items, 2)
		first := items[0].(map[string]interface{})
		assert.Equal(t, "Unload truck", first["title"])
		assert.Equal(t, []interface{}{"Bedsheets"}, first["belonging_names"])
		second := items[1].(map[string]interface{})
		assert.Equal(t, []interface{}{}, second["belonging_ids"])
	})

	t.Run("filters by day type", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/schedule/events?day_type=packing", nil)

		resp := decodeResponse(t, w)
		items := resp.Data.([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, "Pack kitchen", items[0].(map[string]interface{})["title"])
	})

	t.Run("rejects an unknown day type filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/schedule/events?day_type=weekend", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScheduleHandlerUpdate(t *testing.T) {
	t.Run("replaces fields and links", func(t *testing.T) {
		belongings := newFakeBelongingRepository()
		seedRepo(t, belongings, "Plates", "kitchen", nil, belonging.StatusUnpacked)
		seedRepo(t, belongings, "Mugs", "kitchen", nil, belonging.StatusUnpacked)
		events := newFakeEventRepository(belongings)
		router := setupScheduleRouter(events)

		w := doJSON(t, router, http.MethodPost, "/api/schedule/events", gin.H{
			"title": "Pack kitchen", "start_time": "09:00", "end_time": "10:00",
			"day_type": "packing", "belonging_ids": []int64{1},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodPut, "/api/schedule/events/1", gin.H{
			"title": "Pack everything", "start_time": "10:00", "end_time": "12:00",
			"day_type": "packing", "belonging_ids": []int64{2},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Pack everything", events.events[1].Title)
		assert.Equal(t, []int64{2}, events.links[1])
	})

	t.Run("missing event yields 404", func(t *testing.T) {
		router := setupScheduleRouter(newFakeEventRepository(newFakeBelongingRepository()))

		w := doJSON(t, router, http.MethodPut, "/api/schedule/events/5", gin.H{
			"title": "X", "start_time": "09:00", "end_time": "10:00", "day_type": "packing",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestScheduleHandlerDelete(t *testing.T) {
	belongings := newFakeBelongingRepository()
	events := newFakeEventRepository(belongings)
	router := setupScheduleRouter(events)

	w := doJSON(t, router, http.MethodPost, "/api/schedule/events", gin.H{
		"title": "Pack kitchen", "start_time": "09:00", "end_time": "10:00", "day_type": "packing",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/schedule/events/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, events.events)

	w = doJSON(t, router, http.MethodDelete, "/api/schedule/events/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduleHandlerLinkedBelongings(t *testing.T) {
	t.Run("returns linked belongings by name", func(t *testing.T) {
		belongings := newFakeBelongingRepository()
		seedRepo(t, belongings, "Plates", "kitchen", nil, belonging.StatusUnpacked)
		seedRepo(t, belongings, "Cutlery", "kitchen", nil, belonging.StatusPacked)
		events := newFakeEventRepository(belongings)
		router := setupScheduleRouter(events)

		w := doJSON(t, router, http.MethodPost, "/api/schedule/events", gin.H{
			"title": "Pack kitchen", "start_time": "09:00", "end_time": "10:00",
			"day_type": "packing", "belonging_ids": []int64{1, 2},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/schedule/events/1/belongings", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		items := resp.Data.([]interface{})
		require.Len(t, items, 2)
		assert.Equal(t, "Cutlery", items[0].(map[string]interface{})["name"])
	})

	t.Run("missing event yields 404 rather than an empty list", func(t *testing.T) {
		router := setupScheduleRouter(newFakeEventRepository(newFakeBelongingRepository()))

		w := doJSON(t, router, http.MethodGet, "/api/schedule/events/3/belongings", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
