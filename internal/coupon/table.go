package coupon

import "github.com/Cheertaboi/storefront-checkout/internal/models"

// builtin is the storefront's coupon table. Band comments are descriptive
// only; the percentages below are what gets applied.
var builtin = []models.Coupon{
	// Welcome & new user
	{Code: "WELCOME10", Percent: 10, Name: "Welcome Discount", Description: "New user welcome offer", Category: "Welcome"},
	{Code: "NEWUSER15", Percent: 15, Name: "New User Special", Description: "First-time buyer discount", Category: "Welcome"},
	{Code: "FIRSTBUY20", Percent: 20, Name: "First Purchase", Description: "Your first order discount", Category: "Welcome"},

	// General
	{Code: "SAVE20", Percent: 20, Name: "General Savings", Description: "Save on all products", Category: "General"},
	{Code: "DISCOUNT25", Percent: 25, Name: "Site-wide Discount", Description: "Apply to entire order", Category: "General"},
	{Code: "DEAL30", Percent: 30, Name: "Great Deal", Description: "Limited time offer", Category: "General"},

	// Student & education
	{Code: "STUDENT25", Percent: 25, Name: "Student Discount", Description: "Educational pricing", Category: "Education"},
	{Code: "EDUCATION30", Percent: 30, Name: "Education Special", Description: "For students and teachers", Category: "Education"},
	{Code: "CAMPUS35", Percent: 35, Name: "Campus Exclusive", Description: "University student offer", Category: "Education"},

	// Seasonal & holiday
	{Code: "HOLIDAY30", Percent: 30, Name: "Holiday Special", Description: "Seasonal celebration discount", Category: "Seasonal"},
	{Code: "SUMMER25", Percent: 25, Name: "Summer Sale", Description: "Hot summer deals", Category: "Seasonal"},
	{Code: "WINTER40", Percent: 40, Name: "Winter Wonderland", Description: "Cold weather savings", Category: "Seasonal"},
	{Code: "SPRING20", Percent: 20, Name: "Spring Fresh", Description: "New season, new savings", Category: "Seasonal"},
	{Code: "FALL35", Percent: 35, Name: "Fall Harvest", Description: "Autumn special pricing", Category: "Seasonal"},
	{Code: "NEWYEAR50", Percent: 50, Name: "New Year Blast", Description: "Start the year with savings", Category: "Holiday"},
	{Code: "BLACKFRIDAY60", Percent: 60, Name: "Black Friday Mega", Description: "Biggest sale of the year", Category: "Holiday"},
	{Code: "CYBERMONDAY55", Percent: 55, Name: "Cyber Monday", Description: "Online exclusive deals", Category: "Holiday"},

	// VIP & premium
	{Code: "VIP40", Percent: 40, Name: "VIP Member", Description: "Exclusive member pricing", Category: "VIP"},
	{Code: "PREMIUM45", Percent: 45, Name: "Premium Access", Description: "Premium customer discount", Category: "VIP"},
	{Code: "ELITE50", Percent: 50, Name: "Elite Status", Description: "Top-tier customer offer", Category: "VIP"},
	{Code: "PLATINUM55", Percent: 55, Name: "Platinum Member", Description: "Highest tier discount", Category: "VIP"},

	// Flash sale & limited time
	{Code: "FLASH50", Percent: 50, Name: "Flash Sale", Description: "Limited time flash offer", Category: "Flash"},
	{Code: "LIGHTNING45", Percent: 45, Name: "Lightning Deal", Description: "Quick savings opportunity", Category: "Flash"},
	{Code: "QUICK40", Percent: 40, Name: "Quick Save", Description: "Fast discount application", Category: "Flash"},
	{Code: "RUSH35", Percent: 35, Name: "Rush Hour", Description: "Time-sensitive offer", Category: "Flash"},

	// High value
	{Code: "MEGA60", Percent: 60, Name: "Mega Discount", Description: "Massive savings event", Category: "High Value"},
	{Code: "SUPER65", Percent: 65, Name: "Super Saver", Description: "Super-sized discount", Category: "High Value"},
	{Code: "ULTRA70", Percent: 70, Name: "Ultra Discount", Description: "Ultra-high savings", Category: "High Value"},
	{Code: "MAXIMUM75", Percent: 75, Name: "Maximum Save", Description: "Maximum discount possible", Category: "High Value"},
	{Code: "ULTIMATE80", Percent: 80, Name: "Ultimate Deal", Description: "Ultimate savings experience", Category: "High Value"},
	{Code: "SUPREME85", Percent: 85, Name: "Supreme Discount", Description: "Supreme level savings", Category: "High Value"},
	{Code: "EXTREME90", Percent: 90, Name: "Extreme Save", Description: "Extreme discount event", Category: "High Value"},

	// Special events
	{Code: "LAUNCH50", Percent: 50, Name: "Product Launch", Description: "New product launch offer", Category: "Event"},
	{Code: "ANNIVERSARY60", Percent: 60, Name: "Anniversary Sale", Description: "Celebrating our anniversary", Category: "Event"},
	{Code: "BIRTHDAY70", Percent: 70, Name: "Birthday Special", Description: "Birthday celebration discount", Category: "Event"},
	{Code: "MILESTONE80", Percent: 80, Name: "Milestone Achievement", Description: "Special milestone offer", Category: "Event"},

	// Developer & creator
	{Code: "ANKITA", Percent: 99, Name: "Creator Special", Description: "Developer exclusive code", Category: "Creator"},
	{Code: "DEVELOPER95", Percent: 95, Name: "Developer Discount", Description: "For fellow developers", Category: "Creator"},
	{Code: "CREATOR90", Percent: 90, Name: "Content Creator", Description: "Creator community offer", Category: "Creator"},
	{Code: "CODER85", Percent: 85, Name: "Coder Special", Description: "Programming community discount", Category: "Creator"},

	// Product specific
	{Code: "MACBOOK30", Percent: 30, Name: "MacBook Special", Description: "Exclusive MacBook discount", Category: "Product"},
	{Code: "IPHONE25", Percent: 25, Name: "iPhone Deal", Description: "iPhone-specific savings", Category: "Product"},
	{Code: "IPAD35", Percent: 35, Name: "iPad Offer", Description: "iPad exclusive discount", Category: "Product"},
	{Code: "WATCH40", Percent: 40, Name: "Apple Watch Deal", Description: "Watch-specific offer", Category: "Product"},

	// Loyalty & referral
	{Code: "LOYAL30", Percent: 30, Name: "Loyalty Reward", Description: "Thank you for your loyalty", Category: "Loyalty"},
	{Code: "REFERRAL25", Percent: 25, Name: "Referral Bonus", Description: "Friend referral discount", Category: "Referral"},
	{Code: "FRIEND20", Percent: 20, Name: "Friend Discount", Description: "Shared with friends", Category: "Referral"},
	{Code: "FAMILY35", Percent: 35, Name: "Family Plan", Description: "Family member discount", Category: "Family"},

	// Bundle & bulk
	{Code: "BUNDLE40", Percent: 40, Name: "Bundle Deal", Description: "Multiple item discount", Category: "Bundle"},
	{Code: "BULK45", Percent: 45, Name: "Bulk Purchase", Description: "Large quantity savings", Category: "Bundle"},
	{Code: "COMBO50", Percent: 50, Name: "Combo Offer", Description: "Product combination deal", Category: "Bundle"},
	{Code: "PACKAGE55", Percent: 55, Name: "Package Deal", Description: "Complete package discount", Category: "Bundle"},
}

type listing struct {
	code        string
	description string
}

// featured is the curated "all coupons" page. Descriptions here are the
// marketing copy and intentionally differ from the table metadata.
var featured = []listing{
	{"WELCOME10", "New user welcome offer"},
	{"NEWUSER15", "First-time buyer discount"},
	{"FIRSTBUY20", "Your first order discount"},
	{"SAVE20", "Save on all products"},
	{"DISCOUNT25", "Site-wide discount"},
	{"DEAL30", "Limited time offer"},
	{"STUDENT25", "Student discount"},
	{"EDUCATION30", "Educational pricing"},
	{"CAMPUS35", "University exclusive"},
	{"HOLIDAY30", "Holiday special"},
	{"NEWYEAR50", "New Year celebration"},
	{"BLACKFRIDAY60", "Black Friday mega sale"},
	{"VIP40", "VIP member exclusive"},
	{"PREMIUM45", "Premium customer offer"},
	{"PLATINUM55", "Platinum tier discount"},
	{"FLASH50", "Flash sale special"},
	{"LIGHTNING45", "Lightning deal"},
	{"MEGA60", "Mega discount event"},
	{"ULTRA70", "Ultra savings"},
	{"ULTIMATE80", "Ultimate deal"},
	{"EXTREME90", "Extreme savings"},
	{"ANKITA", "Developer special code"},
	{"DEVELOPER95", "Developer community"},
	{"CREATOR90", "Content creator offer"},
}

// popular feeds the suggestion chips next to the coupon field.
var popular = []listing{
	{"WELCOME10", "New user discount"},
	{"SAVE20", "General savings"},
	{"STUDENT25", "Student discount"},
	{"FLASH50", "Flash sale"},
	{"VIP40", "VIP member exclusive"},
	{"ANKITA", "Developer special"},
}
