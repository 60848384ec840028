package workouts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironlog/ironlog/internal/gym/exercises"
	"github.com/ironlog/ironlog/internal/gym/structure"
	"github.com/ironlog/ironlog/internal/gym/workouts"
)

func TestHydrate(t *testing.T) {
	entries := []structure.Entry{
		{ExerciseID: 1, Sets: map[string]structure.Set{"1": {Reps: f(10)}}},
		{ExerciseID: 2, Sets: map[string]structure.Set{"1": {Time: f(60)}}},
		{ExerciseID: 1, Sets: map[string]structure.Set{"1": {Reps: f(8)}}},
	}
	details := map[int]exercises.Exercise{
		1: {ID: 1, Name: "Squat", MuscleGroup: "legs"},
	}

	hydrated := workouts.Hydrate(entries, details)
	require.Len(t, hydrated, 3)

	require.NotNil(t, hydrated[0].ExerciseDetails)
	assert.Equal(t, "Squat", hydrated[0].ExerciseDetails.Name)
	assert.Nil(t, hydrated[1].ExerciseDetails)
	require.NotNil(t, hydrated[2].ExerciseDetails)

	// resolved details are copies, not shared pointers
	hydrated[0].ExerciseDetails.Name = "changed"
	assert.Equal(t, "Squat", hydrated[2].ExerciseDetails.Name)
}

func TestHydrate_Empty(t *testing.T) {
	hydrated := workouts.Hydrate(nil, nil)
	assert.NotNil(t, hydrated)
	assert.Empty(t, hydrated)
}
