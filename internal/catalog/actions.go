package catalog

import "LifeLedger/internal/model"

// actionPool is the discretionary action pool, grouped by category. Money
// impacts double as the ledger entry amounts; Cost is the affordability gate.
var actionPool = []model.ActionItem{
	// Education
	{ID: "edu-study-30", Name: "Study 30 mins", Type: model.ActionEducation,
		Impact:      model.Impact{Money: 5, Health: -5, Happiness: -2},
		Description: "Focus on your studies for half an hour. Boosts career prospects.",
		TimeCost:    0.5},
	{ID: "edu-group-study", Name: "Group Study", Type: model.ActionEducation,
		Impact:      model.Impact{Money: 7, Health: -10, Happiness: 8},
		Description: "Study with classmates for 2 hours. Great for learning and socializing.",
		TimeCost:    2},
	{ID: "edu-hire-tutor", Name: "Hire a Tutor", Type: model.ActionEducation,
		Impact:      model.Impact{Money: -30, Happiness: 5},
		Description: "Get personalized help from a professional tutor.",
		Cost:        30, TimeCost: 1.5},
	{ID: "edu-learning-service", Name: "Subscribe to Learning Service", Type: model.ActionEducation,
		Impact:      model.Impact{Money: -30, Happiness: 3},
		Description: "Access online courses and learning materials.",
		Cost:        30, TimeCost: 0},

	// Work
	{ID: "work-gig", Name: "Do a Quick Gig", Type: model.ActionWork,
		Impact:      model.Impact{Money: 15, Health: -15, Happiness: -5},
		Description: "Take on a short task like washing a car or delivering food.",
		TimeCost:    1.5},
	{ID: "work-find-job", Name: "Find a Job", Type: model.ActionWork,
		Impact:      model.Impact{Money: 10, Health: -5},
		Description: "Search for part-time employment opportunities.",
		TimeCost:    1},
	{ID: "work-manage-job", Name: "Manage Current Job", Type: model.ActionWork,
		Impact:      model.Impact{Money: 8, Happiness: 2},
		Description: "View your current job, adjust hours, or quit if needed.",
		TimeCost:    0.5},

	// Social
	{ID: "social-parents", Name: "Visit Parents", Type: model.ActionSocial,
		Impact:      model.Impact{Happiness: 18, Money: 20},
		Description: "Spend quality time with family. They might help with expenses!",
		TimeCost:    3},
	{ID: "social-date", Name: "Go on a Date", Type: model.ActionSocial,
		Impact:      model.Impact{Happiness: 27, Money: -25},
		Description: "Enjoy a romantic evening with someone special.",
		Cost:        25, TimeCost: 2.5},
	{ID: "social-cinema", Name: "Go to Cinema", Type: model.ActionSocial,
		Impact:      model.Impact{Happiness: 18, Money: -15},
		Description: "Watch a movie with friends and relax.",
		Cost:        15, TimeCost: 2.5},
	{ID: "social-party", Name: "Attend a Party", Type: model.ActionSocial,
		Impact:      model.Impact{Happiness: 35, Health: -20, Money: -20},
		Description: "Let loose and have fun with friends all night!",
		Cost:        20, TimeCost: 4},
	{ID: "social-bowling", Name: "Go Bowling", Type: model.ActionSocial,
		Impact:      model.Impact{Happiness: 22, Money: -18},
		Description: "Strike up some fun with friends at the bowling alley.",
		Cost:        18, TimeCost: 2},
	{ID: "social-eat-out", Name: "Eat Out", Type: model.ActionSocial,
		Impact:      model.Impact{Happiness: 18, Money: -20},
		Description: "Enjoy a meal at a restaurant with friends.",
		Cost:        20, TimeCost: 1.5},
	{ID: "social-gaming", Name: "Gaming Session", Type: model.ActionSocial,
		Impact:      model.Impact{Happiness: 20, Health: -5},
		Description: "Play online games with friends and have a blast.",
		TimeCost:    2},

	// Hobby
	{ID: "hobby-gym-once", Name: "Gym (One-time)", Type: model.ActionHobby,
		Impact:      model.Impact{Health: 10, Happiness: 5, Money: -10},
		Description: "Get a day pass and work out to stay fit.",
		Cost:        10, TimeCost: 1.5},
	{ID: "hobby-gym-sub", Name: "Gym Subscription", Type: model.ActionHobby,
		Impact:      model.Impact{Health: 15, Happiness: 8, Money: -30},
		Description: "Subscribe for unlimited gym access this month.",
		Cost:        30, TimeCost: 0},
	{ID: "hobby-music", Name: "Listen to Music", Type: model.ActionHobby,
		Impact:      model.Impact{Happiness: 8, Health: 5},
		Description: "Relax and enjoy your favorite tunes.",
		TimeCost:    1},
	{ID: "hobby-film", Name: "Watch a Film", Type: model.ActionHobby,
		Impact:      model.Impact{Happiness: 10, Health: 3},
		Description: "Enjoy a movie at home and unwind.",
		TimeCost:    2},
	{ID: "hobby-gaming-solo", Name: "Gaming (Solo)", Type: model.ActionHobby,
		Impact:      model.Impact{Happiness: 12, Health: -5},
		Description: "Play your favorite video games alone.",
		TimeCost:    2},
	{ID: "hobby-book", Name: "Read a Book", Type: model.ActionHobby,
		Impact:      model.Impact{Happiness: 8, Money: 5, Health: 3},
		Description: "Get lost in a good book and expand your mind.",
		TimeCost:    1},
	{ID: "hobby-walk", Name: "Take a Walk", Type: model.ActionHobby,
		Impact:      model.Impact{Health: 8, Happiness: 10},
		Description: "Go for a refreshing walk outside.",
		TimeCost:    0.5},
	{ID: "hobby-pet-cat", Name: "Pet a Cat", Type: model.ActionHobby,
		Impact:      model.Impact{Happiness: 15, Health: 8},
		Description: "Spend time with a furry friend. Instant mood booster!",
		TimeCost:    0.5},
}
