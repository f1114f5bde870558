// ABOUTME: Built-in seed dataset of common reference foods
// ABOUTME: Applied on first use when the KV backend holds no food entries
package nutrition

import "github.com/harper/nutritrack/internal/models"

// seedFoods holds per-100g macro values for a starter set of common foods.
// Values follow standard USDA-style reference data.
var seedFoods = map[string]models.Macros{
	"chicken breast":    {Calories: 165, ProteinG: 31.0, CarbG: 0.0, FatG: 3.6},
	"salmon":            {Calories: 208, ProteinG: 20.4, CarbG: 0.0, FatG: 13.4},
	"ground beef":       {Calories: 250, ProteinG: 26.0, CarbG: 0.0, FatG: 15.0},
	"eggs":              {Calories: 155, ProteinG: 13.0, CarbG: 1.1, FatG: 11.0},
	"tofu":              {Calories: 76, ProteinG: 8.0, CarbG: 1.9, FatG: 4.8},
	"greek yogurt":      {Calories: 59, ProteinG: 10.0, CarbG: 3.6, FatG: 0.4},
	"milk":              {Calories: 42, ProteinG: 3.4, CarbG: 5.0, FatG: 1.0},
	"cheddar cheese":    {Calories: 403, ProteinG: 24.9, CarbG: 1.3, FatG: 33.1},
	"white rice":        {Calories: 130, ProteinG: 2.7, CarbG: 28.2, FatG: 0.3},
	"brown rice":        {Calories: 111, ProteinG: 2.6, CarbG: 23.0, FatG: 0.9},
	"quinoa":            {Calories: 120, ProteinG: 4.4, CarbG: 21.3, FatG: 1.9},
	"oats":              {Calories: 389, ProteinG: 16.9, CarbG: 66.3, FatG: 6.9},
	"whole wheat bread": {Calories: 247, ProteinG: 13.0, CarbG: 41.0, FatG: 3.4},
	"pasta":             {Calories: 131, ProteinG: 5.0, CarbG: 25.0, FatG: 1.1},
	"lentils":           {Calories: 116, ProteinG: 9.0, CarbG: 20.1, FatG: 0.4},
	"black beans":       {Calories: 132, ProteinG: 8.9, CarbG: 23.7, FatG: 0.5},
	"banana":            {Calories: 89, ProteinG: 1.1, CarbG: 22.8, FatG: 0.3},
	"apple":             {Calories: 52, ProteinG: 0.3, CarbG: 13.8, FatG: 0.2},
	"avocado":           {Calories: 160, ProteinG: 2.0, CarbG: 8.5, FatG: 14.7},
	"broccoli":          {Calories: 34, ProteinG: 2.8, CarbG: 6.6, FatG: 0.4},
	"spinach":           {Calories: 23, ProteinG: 2.9, CarbG: 3.6, FatG: 0.4},
	"sweet potato":      {Calories: 86, ProteinG: 1.6, CarbG: 20.1, FatG: 0.1},
	"tomato":            {Calories: 18, ProteinG: 0.9, CarbG: 3.9, FatG: 0.2},
	"almonds":           {Calories: 579, ProteinG: 21.2, CarbG: 21.6, FatG: 49.9},
	"peanut butter":     {Calories: 588, ProteinG: 25.1, CarbG: 19.6, FatG: 50.4},
	"olive oil":         {Calories: 884, ProteinG: 0.0, CarbG: 0.0, FatG: 100.0},
}
