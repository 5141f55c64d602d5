// ABOUTME: Built-in routine and diet presets offered as one-step starting plans.
// ABOUTME: Every call returns a fresh copy so callers may modify the result.
package tracker

import (
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

// Diet preset names.
const (
	DietGeneral  = "general"
	DietRegional = "regional"

	// dietRegionalAlias is the name the regional plan is shown under.
	dietRegionalAlias = "pakistani"
)

// SuggestedRoutine is a six-day fat-loss split with Sunday as rest.
func SuggestedRoutine() models.RoutinePlan {
	return models.RoutinePlan{
		models.Monday: {
			{Name: "Incline Dumbbell Press", Sets: 4, Reps: 10},
			{Name: "Flat Barbell Bench Press", Sets: 4, Reps: 8},
			{Name: "Cable Chest Flys", Sets: 3, Reps: 12},
			{Name: "Tricep Dips", Sets: 3, Reps: 12},
			{Name: "Overhead Tricep Extension", Sets: 3, Reps: 15},
		},
		models.Tuesday: {
			{Name: "Deadlifts", Sets: 4, Reps: 6},
			{Name: "Lat Pulldown", Sets: 4, Reps: 10},
			{Name: "Seated Row", Sets: 3, Reps: 12},
			{Name: "Barbell Curl", Sets: 3, Reps: 10},
			{Name: "Hammer Curl", Sets: 3, Reps: 12},
		},
		models.Wednesday: {
			{Name: "Barbell Squats", Sets: 4, Reps: 8},
			{Name: "Romanian Deadlifts", Sets: 3, Reps: 10},
			{Name: "Walking Lunges", Sets: 3, Reps: 20},
			{Name: "Hip Thrusts", Sets: 3, Reps: 12},
			{Name: "Leg Press", Sets: 3, Reps: 15},
		},
		models.Thursday: {
			{Name: "Overhead Dumbbell Press", Sets: 4, Reps: 10},
			{Name: "Arnold Press", Sets: 3, Reps: 12},
			{Name: "Lateral Raises", Sets: 3, Reps: 15},
			{Name: "Rear Delt Flys", Sets: 3, Reps: 15},
			{Name: "Cable Crunches", Sets: 3, Reps: 20},
		},
		models.Friday: {
			{Name: "Incline Barbell Press", Sets: 4, Reps: 8},
			{Name: "Dumbbell Chest Flys", Sets: 3, Reps: 12},
			{Name: "Pull-Ups", Sets: 4, Reps: 10},
			{Name: "T-Bar Row", Sets: 3, Reps: 12},
			{Name: "Dumbbell Pullover", Sets: 3, Reps: 15},
		},
		models.Saturday: {
			{Name: "Front Squats", Sets: 4, Reps: 8},
			{Name: "Bulgarian Split Squats", Sets: 3, Reps: 10},
			{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: 12},
			{Name: "Upright Row", Sets: 3, Reps: 15},
			{Name: "Calf Raises", Sets: 3, Reps: 20},
		},
		models.Sunday: {},
	}
}

// GeneralDiet is a balanced plan with a slight calorie deficit.
func GeneralDiet() models.DietPlan {
	return models.DietPlan{Days: map[models.Weekday]models.Meals{
		models.Monday: {
			Breakfast: "Oats with berries + 1 scoop protein",
			Lunch:     "Grilled chicken salad (mixed greens, avocado)",
			Snack:     "Greek yogurt + almonds",
			Dinner:    "Salmon, quinoa, steamed broccoli",
		},
		models.Tuesday: {
			Breakfast: "Scrambled eggs + spinach + whole grain toast",
			Lunch:     "Turkey wrap with veggies",
			Snack:     "Apple + peanut butter",
			Dinner:    "Stir-fry tofu with mixed vegetables and brown rice",
		},
		models.Wednesday: {
			Breakfast: "Protein shake + banana",
			Lunch:     "Tuna salad with mixed greens",
			Snack:     "Carrot sticks + hummus",
			Dinner:    "Chicken breast, sweet potato, asparagus",
		},
		models.Thursday: {
			Breakfast: "Cottage cheese with pineapple",
			Lunch:     "Beef and vegetable bowl with quinoa",
			Snack:     "Mixed nuts",
			Dinner:    "Grilled shrimp, brown rice, green beans",
		},
		models.Friday: {
			Breakfast: "Omelette (eggs, veggies) + whole grain toast",
			Lunch:     "Chicken caesar (light dressing)",
			Snack:     "Protein bar or shake",
			Dinner:    "Lean steak, roasted veggies, salad",
		},
		models.Saturday: {
			Breakfast: "Pancakes (protein) + berries",
			Lunch:     "Quinoa salad with chickpeas",
			Snack:     "Cottage cheese + fruit",
			Dinner:    "Baked cod, roasted sweet potato, kale",
		},
		models.Sunday: {
			Breakfast: "Yogurt parfait with granola",
			Lunch:     "Leftovers / flexible meal",
			Snack:     "Fruit + nuts",
			Dinner:    "Light pasta with veggies and lean protein",
		},
	}}
}

const regionalNotes = "Key Notes for Pakistani Context:\n" +
	"- Use skinless chicken, prefer grilling/baking over deep frying.\n" +
	"- Prefer whole wheat chapati, brown rice, or millet instead of white flour naan.\n" +
	"- Cook with minimal oil; use spices for flavor (zeera, dhania, haldi, mirch).\n" +
	"- Hydration: 8–10 glasses daily.\n\n" +
	"Recipe ideas: Chicken tikka baked with yogurt marinade; Chicken palak (minimal oil); Chicken soup with desi spices."

// RegionalDiet is a South Asian plan with a before-bed slot and notes.
func RegionalDiet() models.DietPlan {
	return models.DietPlan{
		Days: map[models.Weekday]models.Meals{
			models.Monday: {
				Breakfast: "Warm water with lemon or green tea; 2 boiled eggs + 1 whole wheat roti",
				Lunch:     "1–2 chapatis, skinless grilled chicken curry, daal or mixed sabzi, fresh salad",
				Snack:     "Seasonal fruit + handful of soaked almonds",
				Dinner:    "Grilled chicken tikka + 1 chapati + sautéed vegetables",
				BeforeBed: "Warm turmeric milk (low-fat) or herbal tea",
			},
			models.Tuesday: {
				Breakfast: "Vegetable omelet with minimal oil + whole wheat toast",
				Lunch:     "Chicken curry (light), brown rice or chapati, salad",
				Snack:     "Green tea + roasted chana",
				Dinner:    "Tofu/vegetable stir-fry with brown rice",
				BeforeBed: "Herbal tea",
			},
			models.Wednesday: {
				Breakfast: "Paratha with ½ tsp desi ghee (occasionally) or egg option",
				Lunch:     "Grilled chicken breast, daal, chapati, salad",
				Snack:     "Greek yogurt or fruit",
				Dinner:    "Chicken palak (minimal oil) + small portion rice",
				BeforeBed: "Warm milk with turmeric",
			},
			models.Thursday: {
				Breakfast: "Oats or protein shake + banana",
				Lunch:     "Tuna or chicken salad, chapati",
				Snack:     "Carrot sticks + hummus",
				Dinner:    "Grilled shrimp or fish, quinoa or rice, vegetables",
				BeforeBed: "Herbal tea",
			},
			models.Friday: {
				Breakfast: "Omelette + whole wheat roti",
				Lunch:     "Lean beef bowl or chicken, brown rice, salad",
				Snack:     "Mixed nuts",
				Dinner:    "Lean steak or kebab, roasted veggies",
				BeforeBed: "Warm milk",
			},
			models.Saturday: {
				Breakfast: "Protein pancakes or yogurt parfait",
				Lunch:     "Quinoa salad with chickpeas",
				Snack:     "Cottage cheese + fruit",
				Dinner:    "Baked cod or chicken, sweet potato, kale",
				BeforeBed: "Herbal tea",
			},
			models.Sunday: {
				Breakfast: "Yogurt parfait with granola",
				Lunch:     "Flexible/leftovers",
				Snack:     "Fruit + nuts",
				Dinner:    "Light pasta with veggies and lean protein",
				BeforeBed: "Warm milk",
			},
		},
		Notes: regionalNotes,
	}
}

// DietPresetNames lists the accepted preset names.
func DietPresetNames() []string {
	return []string{DietGeneral, DietRegional}
}

// DietPreset looks up a preset by name, ignoring case. "pakistani" is
// accepted for the regional plan.
func DietPreset(name string) (models.DietPlan, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DietGeneral:
		return GeneralDiet(), true
	case DietRegional, dietRegionalAlias:
		return RegionalDiet(), true
	default:
		return models.DietPlan{}, false
	}
}
