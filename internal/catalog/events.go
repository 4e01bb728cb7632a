package catalog

import "LifeLedger/internal/model"

// eventPool is the static day-event pool used in mock mode. Deltas are
// hand-authored; choice ids are 1-indexed per event.
var eventPool = []model.DayEvent{
	{
		Description: "A premium streaming service launches with exclusive content everyone's talking about. The subscription is $15/month with a 30-day free trial.",
		Choices: []model.Choice{
			{ID: 1, Text: "Subscribe immediately - I can't miss out on this content!", Impact: model.Impact{Money: -15, Happiness: 10}},
			{ID: 2, Text: "Start free trial with a calendar reminder to cancel", Impact: model.Impact{Happiness: 5}},
			{ID: 3, Text: "Wait and see reviews before committing", Impact: model.Impact{Happiness: -2}},
			{ID: 4, Text: "Research free alternatives instead", Impact: model.Impact{Money: 5, Happiness: -5}},
		},
	},
	{
		Description: "Your friends are planning an expensive weekend trip. Everyone's going, but it will cost $300 and you have bills due soon.",
		Choices: []model.Choice{
			{ID: 1, Text: "Go on the trip - experiences with friends are priceless", Impact: model.Impact{Health: 5, Money: -30, Happiness: 15}},
			{ID: 2, Text: "Suggest a cheaper alternative activity instead", Impact: model.Impact{Health: 3, Money: -10, Happiness: 8}},
			{ID: 3, Text: "Skip this one and save for the next gathering", Impact: model.Impact{Happiness: -5}},
			{ID: 4, Text: "Go but set strict spending limits for yourself", Impact: model.Impact{Health: 3, Money: -15, Happiness: 5}},
		},
	},
	{
		Description: "Your boss offers you overtime work this weekend that pays well but you're already exhausted and had plans with family.",
		Choices: []model.Choice{
			{ID: 1, Text: "Accept the overtime - the extra money is too good to pass up", Impact: model.Impact{Health: -10, Money: 20, Happiness: -8}},
			{ID: 2, Text: "Negotiate to work only one day instead of both", Impact: model.Impact{Health: -5, Money: 10}},
			{ID: 3, Text: "Decline politely and keep your plans", Impact: model.Impact{Health: 5, Happiness: 10}},
			{ID: 4, Text: "Accept but promise yourself a rest day next week", Impact: model.Impact{Health: -8, Money: 20, Happiness: -3}},
		},
	},
	{
		Description: "A fitness app wants $12/month for premium features. You've been meaning to work out more, but you could also exercise for free.",
		Choices: []model.Choice{
			{ID: 1, Text: "Subscribe - investing in health is always worth it", Impact: model.Impact{Health: 10, Money: -12, Happiness: 5}},
			{ID: 2, Text: "Try the free version first for a month", Impact: model.Impact{Health: 5, Happiness: 3}},
			{ID: 3, Text: "Skip it and use free workout videos", Impact: model.Impact{Health: 3}},
			{ID: 4, Text: "Focus on diet changes instead, no app needed", Impact: model.Impact{Health: 8, Happiness: 2}},
		},
	},
	{
		Description: "Your favorite online store has a flash sale - 60% off! You don't need anything urgently, but the deals are incredible.",
		Choices: []model.Choice{
			{ID: 1, Text: "Buy everything in your cart - these deals are rare!", Impact: model.Impact{Money: -40, Happiness: 12}},
			{ID: 2, Text: "Only buy one item you've wanted for a while", Impact: model.Impact{Money: -15, Happiness: 8}},
			{ID: 3, Text: "Save the money - sales happen all the time", Impact: model.Impact{Happiness: -3}},
			{ID: 4, Text: "Set a strict budget limit before shopping", Impact: model.Impact{Money: -20, Happiness: 5}},
		},
	},
	{
		Description: "A friend invites you to an expensive networking dinner with potential career contacts. It's $80 per person but could lead to opportunities.",
		Choices: []model.Choice{
			{ID: 1, Text: "Go and spare no expense - networking is investing in your future", Impact: model.Impact{Money: -80, Happiness: 8}},
			{ID: 2, Text: "Attend but order modestly to save money", Impact: model.Impact{Money: -50, Happiness: 5}},
			{ID: 3, Text: "Ask the friend to introduce you another way", Impact: model.Impact{}},
			{ID: 4, Text: "Skip it and focus on online networking instead", Impact: model.Impact{Happiness: -3}},
		},
	},
	{
		Description: "You feel burned out from work. A spa day costs $150, therapy is $100 per session, or you could take a free mental health day at home.",
		Choices: []model.Choice{
			{ID: 1, Text: "Book the spa day - I deserve this relaxation", Impact: model.Impact{Health: 15, Money: -150, Happiness: 20}},
			{ID: 2, Text: "Try one therapy session to talk things through", Impact: model.Impact{Health: 10, Money: -100, Happiness: 15}},
			{ID: 3, Text: "Take a free day off to rest at home", Impact: model.Impact{Health: 8, Happiness: 10}},
			{ID: 4, Text: "Push through - I'll rest when things calm down", Impact: model.Impact{Health: -5, Happiness: -10}},
		},
	},
	{
		Description: "An online course promises to boost your career skills for $299. Reviews are mixed, but some say it helped them get promotions.",
		Choices: []model.Choice{
			{ID: 1, Text: "Invest in the course - education pays off long-term", Impact: model.Impact{Money: -299, Happiness: 5}},
			{ID: 2, Text: "Look for free courses covering the same topics", Impact: model.Impact{}},
			{ID: 3, Text: "Ask your company if they'll pay for it", Impact: model.Impact{Happiness: 3}},
			{ID: 4, Text: "Learn from free online resources like YouTube", Impact: model.Impact{Happiness: -2}},
		},
	},
	{
		Description: "Your phone is getting slow. A new model costs $1000, repair costs $200, or you could keep using it as is.",
		Choices: []model.Choice{
			{ID: 1, Text: "Buy the new phone - I need it for work and life", Impact: model.Impact{Money: -100, Happiness: 15}},
			{ID: 2, Text: "Get it repaired and extend its life", Impact: model.Impact{Money: -20, Happiness: 5}},
			{ID: 3, Text: "Keep using it until it completely breaks", Impact: model.Impact{Happiness: -5}},
			{ID: 4, Text: "Look for a cheaper refurbished model", Impact: model.Impact{Money: -40, Happiness: 3}},
		},
	},
	{
		Description: "It's Sunday evening and you're too tired to cook. Meal delivery is $25, frozen pizza is $8, or you could force yourself to cook what's in the fridge.",
		Choices: []model.Choice{
			{ID: 1, Text: "Order delivery - my time and energy are valuable", Impact: model.Impact{Health: -3, Money: -25, Happiness: 10}},
			{ID: 2, Text: "Quick frozen pizza - a compromise", Impact: model.Impact{Health: -2, Money: -8, Happiness: 5}},
			{ID: 3, Text: "Cook something simple from the fridge", Impact: model.Impact{Health: 3, Happiness: 3}},
			{ID: 4, Text: "Meal prep for the week to avoid this situation", Impact: model.Impact{Health: 5, Money: -20}},
		},
	},
	{
		Description: "A gaming console you've wanted goes on sale. It's $400 now instead of $500. You'd use it for entertainment and stress relief.",
		Choices: []model.Choice{
			{ID: 1, Text: "Buy it now - $100 savings is significant", Impact: model.Impact{Money: -40, Happiness: 20}},
			{ID: 2, Text: "Wait for an even better deal during holidays", Impact: model.Impact{Happiness: -5}},
			{ID: 3, Text: "Put the money toward savings instead", Impact: model.Impact{Happiness: -8}},
			{ID: 4, Text: "Buy it but sell old electronics to offset cost", Impact: model.Impact{Money: -20, Happiness: 15}},
		},
	},
	{
		Description: "Your car needs maintenance: $500 now for prevention, or wait and risk a $2000 repair later. You're low on funds this month.",
		Choices: []model.Choice{
			{ID: 1, Text: "Do the maintenance now - prevention saves money", Impact: model.Impact{Money: -50, Happiness: -5}},
			{ID: 2, Text: "Do only the most critical maintenance for $250", Impact: model.Impact{Money: -25, Happiness: -3}},
			{ID: 3, Text: "Wait until next month when you have more money", Impact: model.Impact{Happiness: -10}},
			{ID: 4, Text: "Get a second opinion to confirm what's needed", Impact: model.Impact{Money: -5}},
		},
	},
	{
		Description: "A family member asks to borrow $200. They've borrowed before and always pay back, but it's slow. You were saving that money.",
		Choices: []model.Choice{
			{ID: 1, Text: "Lend it - family comes first always", Impact: model.Impact{Money: -20, Happiness: 5}},
			{ID: 2, Text: "Lend half and explain your own budget constraints", Impact: model.Impact{Money: -10, Happiness: 3}},
			{ID: 3, Text: "Decline politely and suggest other resources", Impact: model.Impact{Happiness: -5}},
			{ID: 4, Text: "Give it as a gift with no expectation of return", Impact: model.Impact{Money: -20, Happiness: 8}},
		},
	},
	{
		Description: "Your company offers a 401k match but you'd have to reduce your take-home pay by $100/month. You're already feeling financially tight.",
		Choices: []model.Choice{
			{ID: 1, Text: "Enroll - free money from employer is too good to miss", Impact: model.Impact{Money: -10, Happiness: 5}},
			{ID: 2, Text: "Start with minimum contribution to get some match", Impact: model.Impact{Money: -5, Happiness: 3}},
			{ID: 3, Text: "Wait until you have more financial breathing room", Impact: model.Impact{Happiness: -3}},
			{ID: 4, Text: "Enroll and cut other expenses to make up difference", Impact: model.Impact{Money: -10}},
		},
	},
	{
		Description: "You're invited to a conference in your field. Registration is $300, travel $400. It could boost your career but it's expensive.",
		Choices: []model.Choice{
			{ID: 1, Text: "Go - career advancement is worth the investment", Impact: model.Impact{Money: -70, Happiness: 10}},
			{ID: 2, Text: "Go but look for ways to minimize travel costs", Impact: model.Impact{Health: -3, Money: -40, Happiness: 5}},
			{ID: 3, Text: "Skip it and watch if they post sessions online", Impact: model.Impact{Happiness: -5}},
			{ID: 4, Text: "Ask your employer if they'll cover any costs", Impact: model.Impact{Happiness: 3}},
		},
	},
	{
		Description: "A limited edition collectible you love is available for $200. It will likely increase in value, but you don't need it.",
		Choices: []model.Choice{
			{ID: 1, Text: "Buy it - it's an investment that will appreciate", Impact: model.Impact{Money: -20, Happiness: 15}},
			{ID: 2, Text: "Buy it only if you truly love it, not for profit", Impact: model.Impact{Money: -20, Happiness: 10}},
			{ID: 3, Text: "Skip it - collectibles are unpredictable investments", Impact: model.Impact{Happiness: -5}},
			{ID: 4, Text: "Set a price alert and revisit in a month", Impact: model.Impact{}},
		},
	},
	{
		Description: "You've been eating out for lunch daily ($12/day). Making lunch at home saves money but takes morning time you don't have.",
		Choices: []model.Choice{
			{ID: 1, Text: "Keep eating out - my time is more valuable", Impact: model.Impact{Health: -5, Money: -12, Happiness: 5}},
			{ID: 2, Text: "Meal prep on Sundays to have quick lunches", Impact: model.Impact{Health: 5, Money: -3, Happiness: 3}},
			{ID: 3, Text: "Pack simple lunches like sandwiches", Impact: model.Impact{Health: 3, Money: -2}},
			{ID: 4, Text: "Alternate - eat out 2-3 times, pack the rest", Impact: model.Impact{Money: -7, Happiness: 5}},
		},
	},
	{
		Description: "Your lease is ending. A nicer apartment costs $200 more/month but is closer to work, saving 1 hour of commute daily.",
		Choices: []model.Choice{
			{ID: 1, Text: "Take the nicer place - time saved is worth money", Impact: model.Impact{Health: 10, Money: -20, Happiness: 15}},
			{ID: 2, Text: "Calculate exact cost of time vs money before deciding", Impact: model.Impact{}},
			{ID: 3, Text: "Stay in current place and invest the $200/month", Impact: model.Impact{Health: -5, Money: 20, Happiness: -5}},
			{ID: 4, Text: "Negotiate with current landlord for better terms", Impact: model.Impact{Happiness: 3}},
		},
	},
	{
		Description: "A charity you care about asks for donations. You want to help but you're working on building your emergency fund.",
		Choices: []model.Choice{
			{ID: 1, Text: "Donate $50 - giving back is important regardless", Impact: model.Impact{Money: -50, Happiness: 10}},
			{ID: 2, Text: "Donate $20 - something is better than nothing", Impact: model.Impact{Money: -20, Happiness: 5}},
			{ID: 3, Text: "Skip for now - secure yourself first before helping others", Impact: model.Impact{Happiness: -3}},
			{ID: 4, Text: "Volunteer time instead of money", Impact: model.Impact{Health: 5, Happiness: 8}},
		},
	},
	{
		Description: "You're exhausted and considering hiring a cleaning service for $100/month. It would free up 4 hours but feels indulgent.",
		Choices: []model.Choice{
			{ID: 1, Text: "Hire the service - buying back time is valuable", Impact: model.Impact{Health: 5, Money: -10, Happiness: 10}},
			{ID: 2, Text: "Try it for 2 months to evaluate the value", Impact: model.Impact{Health: 3, Money: -10, Happiness: 5}},
			{ID: 3, Text: "Clean less frequently instead of hiring help", Impact: model.Impact{Health: -3, Happiness: -5}},
			{ID: 4, Text: "Keep doing it yourself - it's exercise anyway", Impact: model.Impact{Health: 3, Happiness: -3}},
		},
	},
}
