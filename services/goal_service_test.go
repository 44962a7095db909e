package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalPatchSubsetOnly(t *testing.T) {
	var p GoalPatch
	err := json.Unmarshal([]byte(`{"cal":1800}`), &p)
	assert.NoError(t, err)

	set := p.Fields()

	assert.Equal(t, map[string]interface{}{"goal_cals": 1800.0}, set)
}

func TestGoalPatchSkipsNonNumericFields(t *testing.T) {
	var p GoalPatch
	err := json.Unmarshal([]byte(`{"cal":"2000","protein":"lots","carbs":"","fat":null}`), &p)
	assert.NoError(t, err)

	set := p.Fields()

	assert.Equal(t, map[string]interface{}{"goal_cals": 2000.0}, set)
}

func TestGoalPatchEmpty(t *testing.T) {
	var p GoalPatch
	err := json.Unmarshal([]byte(`{}`), &p)
	assert.NoError(t, err)

	assert.Empty(t, p.Fields())
}

func TestGoalPatchAllFields(t *testing.T) {
	var p GoalPatch
	err := json.Unmarshal([]byte(`{"cal":2000,"protein":150,"carbs":250,"fat":70}`), &p)
	assert.NoError(t, err)

	set := p.Fields()

	assert.Len(t, set, 4)
	assert.Equal(t, 150.0, set["goal_protein"])
	assert.Equal(t, 250.0, set["goal_carbs"])
	assert.Equal(t, 70.0, set["goal_fat"])
}
