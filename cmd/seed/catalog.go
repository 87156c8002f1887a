package main

import (
	"github.com/hoopmetrics/hoopking/internal/achievements"
	"github.com/hoopmetrics/hoopking/internal/plans"
	"github.com/hoopmetrics/hoopking/internal/workouts"
)

type seedExercise struct {
	name  string
	reps  string
	notes string
}

type seedWorkout struct {
	name        string
	description string
	workoutType workouts.Type
	difficulty  workouts.Difficulty
	duration    int
	exercises   []seedExercise
}

var catalog = []seedWorkout{
	{
		name:        "GOATA Foundation Flow",
		description: "Core GOATA movement patterns focusing on spiral alignment and myofascial release",
		workoutType: workouts.TypeRecovery,
		difficulty:  workouts.DifficultyBeginner,
		duration:    45,
		exercises: []seedExercise{
			{"Walking Backwards", "2 minutes", "Heel to toe, focus on posterior chain activation"},
			{"Forward Fold Flow", "10 reps", "Spiral down through the chain"},
			{"Glute Spiral Activation", "15 each side", "Feel the spiral through the hip"},
			{"Single Leg Balance", "30 seconds each", "Maintain spiral alignment"},
		},
	},
	{
		name:        "GOATA Athletic Power",
		description: "Advanced GOATA patterns for explosive power development and athletic performance",
		workoutType: workouts.TypeStrength,
		difficulty:  workouts.DifficultyAdvanced,
		duration:    60,
		exercises: []seedExercise{
			{"Spiral Medicine Ball Throws", "8 each direction", "Full body spiral power"},
			{"Single Leg Deadlift to Sprint", "6 each leg", "Explosive spiral extension"},
			{"Rotational Band Pulls", "12 each direction", "Maintain spiral integrity"},
			{"Backward Bear Crawl", "20 steps", "Posterior chain dominance"},
		},
	},
	{
		name:        "Soviet Strength Foundation",
		description: "Classic Soviet block periodization focusing on maximum strength development",
		workoutType: workouts.TypeStrength,
		difficulty:  workouts.DifficultyIntermediate,
		duration:    90,
		exercises: []seedExercise{
			{"Back Squat", "5x5 @ 85%", "3-4 minute rest between sets"},
			{"Romanian Deadlift", "4x6", "Focus on posterior chain"},
			{"Overhead Press", "4x5", "Strict form, no leg drive"},
			{"Pendlay Rows", "4x6", "Explosive pull, controlled negative"},
		},
	},
	{
		name:        "Soviet Power Development",
		description: "Olympic lifting variations and explosive power training from Soviet methodology",
		workoutType: workouts.TypeStrength,
		difficulty:  workouts.DifficultyAdvanced,
		duration:    75,
		exercises: []seedExercise{
			{"Power Clean", "6x3 @ 80%", "Focus on bar speed"},
			{"Front Squat", "5x3 @ 90%", "Maximum load with perfect form"},
			{"Push Press", "4x4", "Drive through legs first"},
			{"Snatch Pulls", "4x5", "Explosive triple extension"},
		},
	},
	{
		name:        "NBA On-Court Skills",
		description: "Professional basketball skill development focused on game situations",
		workoutType: workouts.TypeSkills,
		difficulty:  workouts.DifficultyIntermediate,
		duration:    60,
		exercises: []seedExercise{
			{"Cone Dribbling Series", "5 sets", "Both hands, game speed"},
			{"Defensive Slide Ladder", "4x20 seconds", "Low stance, quick feet"},
			{"Shooting Off Movement", "100 shots", "Game spots, various angles"},
			{"1v1 Finishing", "15 reps each hand", "Contact finishes at rim"},
		},
	},
	{
		name:        "NBA Conditioning Circuit",
		description: "High-intensity conditioning matching NBA game demands",
		workoutType: workouts.TypeCardio,
		difficulty:  workouts.DifficultyAdvanced,
		duration:    45,
		exercises: []seedExercise{
			{"Suicide Sprints", "10 reps", "Touch each line, full sprint"},
			{"Transition 3s", "20 makes", "Sprint to spot, shoot, repeat"},
			{"Defensive Shell Drill", "5x45 seconds", "Communication required"},
			{"Full Court Layups", "2 minutes", "Both hands, no misses"},
		},
	},
	{
		name:        "Athletic Movement Prep",
		description: "Dynamic warm-up and movement preparation for any sport or activity",
		workoutType: workouts.TypeMixed,
		difficulty:  workouts.DifficultyBeginner,
		duration:    30,
		exercises: []seedExercise{
			{"Leg Swings", "10 each direction", "Front/back and side to side"},
			{"Arm Circles", "10 each direction", "Gradually increase size"},
			{"Walking High Knees", "20 steps", "Drive knee to chest"},
			{"Butt Kicks", "20 steps", "Heel to glute contact"},
			{"Side Shuffles", "10 each direction", "Stay low, don't cross feet"},
		},
	},
}

type seedPlan struct {
	params plans.CreateParams
	// indexes into catalog, scheduled one per day in order
	workouts []int
}

var programs = []seedPlan{
	{
		params: plans.CreateParams{
			Name:            "NBA Off-Season Program",
			Description:     "Four weeks of on-court skills, conditioning and recovery",
			Methodology:     "nba",
			PlanType:        plans.TypeBasketball,
			Difficulty:      workouts.DifficultyIntermediate,
			Duration:        4,
			WorkoutsPerWeek: 3,
			IsPopular:       true,
		},
		workouts: []int{4, 5, 0},
	},
	{
		params: plans.CreateParams{
			Name:            "Soviet Strength Block",
			Description:     "Block periodization for maximum strength",
			Methodology:     "soviet",
			PlanType:        plans.TypeStrength,
			Difficulty:      workouts.DifficultyAdvanced,
			Duration:        6,
			WorkoutsPerWeek: 2,
		},
		workouts: []int{2, 3},
	},
}

var badges = []achievements.CreateParams{
	{
		Name:        "First Bucket",
		Description: "Complete your first workout",
		Category:    "milestone",
		Requirement: achievements.Requirement{TotalWorkouts: 1},
		Points:      25,
	},
	{
		Name:        "Gym Rat",
		Description: "Complete 10 workouts",
		Category:    "milestone",
		Requirement: achievements.Requirement{TotalWorkouts: 10},
		Points:      100,
	},
	{
		Name:        "Hoop King",
		Description: "Complete 50 workouts",
		Category:    "milestone",
		Requirement: achievements.Requirement{TotalWorkouts: 50},
		Points:      500,
	},
}
