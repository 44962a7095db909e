package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/services"
)

type fakeGoalAPI struct {
	goals   models.Goals
	getErr  error
	patched []services.GoalPatch
}

func (f *fakeGoalAPI) Get(userID uint) (models.Goals, error) {
	return f.goals, f.getErr
}

func (f *fakeGoalAPI) Patch(userID uint, p services.GoalPatch) (models.Goals, error) {
	if len(p.Fields()) == 0 {
		return models.Goals{}, services.ErrEmptyGoalPatch
	}
	f.patched = append(f.patched, p)
	if p.Cal != nil && p.Cal.Valid() {
		f.goals.Cal = p.Cal.Or(0)
	}
	if p.Protein != nil && p.Protein.Valid() {
		f.goals.Protein = p.Protein.Or(0)
	}
	return f.goals, nil
}

func newGoalTestRouter(fake *fakeGoalAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(1)) })

	gc := NewGoalController(fake, zap.NewNop())
	r.GET("/api/user/goals", gc.GetGoals)
	r.PATCH("/api/user/goals", gc.PatchGoals)
	return r
}

func TestGetGoals(t *testing.T) {
	fake := &fakeGoalAPI{goals: models.Goals{Cal: 1800, Protein: 120}}
	r := newGoalTestRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/goals", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"goals":{"cal":1800,"protein":120,"carbs":0,"fat":0}}`, w.Body.String())
}

func TestGetGoalsUserMissing(t *testing.T) {
	fake := &fakeGoalAPI{getErr: services.ErrUserNotFound}
	r := newGoalTestRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/goals", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchGoalsPartial(t *testing.T) {
	fake := &fakeGoalAPI{goals: models.Goals{Cal: 2000, Protein: 100}}
	r := newGoalTestRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/user/goals", strings.NewReader(`{"cal":1800}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// protein untouched by a calories-only patch
	assert.JSONEq(t, `{"goals":{"cal":1800,"protein":100,"carbs":0,"fat":0}}`, w.Body.String())
}

func TestPatchGoalsWrappedBody(t *testing.T) {
	fake := &fakeGoalAPI{}
	r := newGoalTestRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/user/goals", strings.NewReader(`{"goals":{"protein":150}}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, fake.patched, 1)
	assert.Equal(t, 150.0, fake.goals.Protein)
}

func TestPatchGoalsNoValidFields(t *testing.T) {
	r := newGoalTestRouter(&fakeGoalAPI{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/user/goals", strings.NewReader(`{"cal":"nonsense"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
