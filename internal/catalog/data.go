package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/trinhquocthinh/foodhub/pkg/enums"
)

var menuItems = []Item{
	{
		ID:          "menu-burrata-citrus",
		Name:        "Burrata & Citrus",
		Description: "Creamy burrata, charred grapefruit, basil oil, and toasted pistachio crumble.",
		Price:       decimal.NewFromInt(13),
		Category:    enums.CategoryStarters,
		Tags:        []enums.Tag{enums.TagSeasonal, enums.TagGlutenFree},
		Image:       "/images/menu1.jpg",
		Rating:      5,
		Calories:    320,
		PrepTime:    8,
		Highlight:   "Pair with a crisp elderflower spritz to brighten the citrus.",
	},
	{
		ID:          "menu-charred-carrot",
		Name:        "Charred Carrot Hummus",
		Description: "Smoked chickpea purée, roasted rainbow carrots, pomegranate, and mint tahini.",
		Price:       decimal.NewFromInt(11),
		Category:    enums.CategoryStarters,
		Tags:        []enums.Tag{enums.TagVegan, enums.TagSeasonal},
		Image:       "/images/menu2.jpg",
		Rating:      4.8,
		Calories:    280,
		PrepTime:    10,
	},
	{
		ID:          "menu-crispy-cauliflower",
		Name:        "Crispy Cauliflower",
		Description: "Harissa glaze, golden raisins, and whipped labneh finished with toasted sesame.",
		Price:       decimal.NewFromInt(12),
		Category:    enums.CategorySides,
		Tags:        []enums.Tag{enums.TagHot, enums.TagSignature},
		Image:       "/images/menu3.jpg",
		Rating:      4.9,
		Calories:    260,
		PrepTime:    12,
	},
	{
		ID:          "menu-citrus-salmon",
		Name:        "Citrus-Cured Salmon",
		Description: "House-cured salmon, dill crème fraîche, pickled cucumber, and rye crumble.",
		Price:       decimal.NewFromInt(18),
		Category:    enums.CategoryStarters,
		Tags:        []enums.Tag{enums.TagSignature},
		Image:       "/images/menu4.jpg",
		Rating:      5,
		Calories:    340,
		PrepTime:    9,
	},
	{
		ID:          "menu-black-garlic-risotto",
		Name:        "Black Garlic Risotto",
		Description: "Aged carnaroli rice, wild mushrooms, truffle espuma, and parmesan crisp.",
		Price:       decimal.NewFromInt(24),
		Category:    enums.CategoryMains,
		Tags:        []enums.Tag{enums.TagSignature, enums.TagGlutenFree},
		Image:       "/images/food1.png",
		Rating:      5,
		Calories:    540,
		PrepTime:    16,
	},
	{
		ID:          "menu-miso-cod",
		Name:        "Miso Glazed Cod",
		Description: "Caramelized black cod, citrus kosho, charred broccolini, and jasmine rice.",
		Price:       decimal.NewFromInt(27),
		Category:    enums.CategoryMains,
		Tags:        []enums.Tag{enums.TagSeasonal, enums.TagGlutenFree},
		Image:       "/images/food2.png",
		Rating:      4.9,
		Calories:    480,
		PrepTime:    14,
	},
	{
		ID:          "menu-saffron-gnocchi",
		Name:        "Saffron Gnocchi",
		Description: "Hand-rolled potato gnocchi, blistered tomato fondue, basil pesto, and pecorino.",
		Price:       decimal.NewFromInt(21),
		Category:    enums.CategoryMains,
		Tags:        []enums.Tag{enums.TagSignature},
		Image:       "/images/food3.png",
		Rating:      4.7,
		Calories:    510,
		PrepTime:    13,
	},
	{
		ID:          "menu-charred-cabbage",
		Name:        "Charred Savoy Cabbage",
		Description: "Smoked almond romesco, crisp apple, pickled mustard seeds, and almond praline.",
		Price:       decimal.NewFromInt(18),
		Category:    enums.CategoryMains,
		Tags:        []enums.Tag{enums.TagVegan, enums.TagSeasonal},
		Image:       "/images/menu5.jpg",
		Rating:      4.8,
		Calories:    390,
		PrepTime:    15,
	},
	{
		ID:          "menu-crispy-potatoes",
		Name:        "Crispy Potatoes",
		Description: "Triple-cooked potatoes with rosemary salt, preserved lemon aioli, and chives.",
		Price:       decimal.NewFromInt(9),
		Category:    enums.CategorySides,
		Tags:        []enums.Tag{enums.TagGlutenFree},
		Image:       "/images/menu2.jpg",
		Rating:      4.6,
		Calories:    320,
		PrepTime:    7,
	},
	{
		ID:          "menu-chocolate-silk",
		Name:        "Midnight Chocolate Silk",
		Description: "Single-origin chocolate mousse, smoked sea salt caramel, and cocoa nib crunch.",
		Price:       decimal.NewFromInt(11),
		Category:    enums.CategoryDesserts,
		Tags:        []enums.Tag{enums.TagSignature},
		Image:       "/images/menu3.jpg",
		Rating:      5,
		Calories:    420,
		PrepTime:    6,
	},
	{
		ID:          "menu-citrus-panna-cotta",
		Name:        "Citrus Panna Cotta",
		Description: "Silky vanilla panna cotta with blood orange gelée, candied zest, and pistachio dust.",
		Price:       decimal.NewFromInt(10),
		Category:    enums.CategoryDesserts,
		Tags:        []enums.Tag{enums.TagGlutenFree, enums.TagSeasonal},
		Image:       "/images/menu1.jpg",
		Rating:      4.9,
		Calories:    360,
		PrepTime:    5,
	},
	{
		ID:          "menu-elderflower-spritz",
		Name:        "Elderflower Spritz",
		Description: "Sparkling citrus, cucumber coolers, and elderflower tonic with botanical ice.",
		Price:       decimal.NewFromInt(8),
		Category:    enums.CategoryDrinks,
		Tags:        []enums.Tag{enums.TagSeasonal},
		Image:       "/images/menu4.jpg",
		Rating:      4.5,
		Calories:    80,
		PrepTime:    4,
	},
	{
		ID:          "menu-smoked-espresso",
		Name:        "Smoked Espresso Tonic",
		Description: "Cold-brew espresso, smoked rosemary syrup, tonic, and charred orange.",
		Price:       decimal.NewFromInt(7),
		Category:    enums.CategoryDrinks,
		Tags:        []enums.Tag{enums.TagSignature},
		Image:       "/images/menu5.jpg",
		Rating:      4.7,
		Calories:    90,
		PrepTime:    3,
	},
}

var products = []Item{
	{
		ID:          "dish-01",
		Name:        "Stracciatella",
		Price:       decimal.NewFromInt(11),
		Description: "Heirloom tomatoes, basil oil, charred corn, and creamy stracciatella with toasted focaccia.",
		Image:       "/images/menu1.jpg",
		Tags:        []enums.Tag{enums.TagVegan},
		Rating:      5,
	},
	{
		ID:          "dish-02",
		Name:        "Chevrefrit au miel",
		Price:       decimal.NewFromInt(14),
		Description: "Crispy goat cheese with wildflower honey, arugula, and toasted walnuts.",
		Image:       "/images/menu2.jpg",
		Rating:      5,
	},
	{
		ID:          "dish-03",
		Name:        "Saumon Gravlax",
		Price:       decimal.NewFromInt(9),
		Description: "House-cured salmon, pickled cucumber, dill crème fraîche, and rye crumble.",
		Image:       "/images/menu3.jpg",
		Rating:      5,
	},
	{
		ID:          "dish-04",
		Name:        "Croustillant de poisson",
		Price:       decimal.NewFromInt(12),
		Description: "Spiced crispy fish, chili aioli, charred citrus, and shaved fennel salad.",
		Image:       "/images/menu4.jpg",
		Tags:        []enums.Tag{enums.TagHot},
		Rating:      5,
	},
	{
		ID:          "dish-05",
		Name:        "Carpaccio de daurade",
		Price:       decimal.NewFromInt(19),
		Description: "Sea bream with lime zest, pink peppercorn, micro herbs, and olive oil pearls.",
		Image:       "/images/menu5.jpg",
		Tags:        []enums.Tag{enums.TagVegan},
		Rating:      5,
	},
	{
		ID:          "dish-06",
		Name:        "Citrus Panna Cotta",
		Price:       decimal.NewFromInt(8),
		Description: "Silky vanilla panna cotta, blood orange gelée, candied zest, and pistachio crumble.",
		Image:       "/images/menu2.jpg",
		Rating:      5,
	},
}

var services = []Service{
	{
		ID:          "service-01",
		Number:      "01",
		Title:       "Located in the heart of the city",
		Description: "Find us steps away from downtown landmarks with easy access and extended opening hours.",
	},
	{
		ID:          "service-02",
		Number:      "02",
		Title:       "Fresh ingredients from organic farms",
		Description: "We partner with trusted growers to source seasonal produce harvested at peak flavor.",
	},
	{
		ID:          "service-03",
		Number:      "03",
		Title:       "Swift delivery, 30 minutes or less",
		Description: "Enjoy Foodhub favorites at home thanks to our dedicated delivery fleet and smart routing.",
	},
	{
		ID:          "service-04",
		Number:      "04",
		Title:       "Experienced, passionate chefs",
		Description: "Our culinary team blends global inspiration with classic techniques to craft signature dishes.",
	},
	{
		ID:          "service-05",
		Number:      "05",
		Title:       "Hospitality that feels personal",
		Description: "From the first greeting to the final course, we focus on meaningful, memorable guest experiences.",
	},
}

var testimonials = []Testimonial{
	{
		ID:     "testimonial-01",
		Title:  "Very tasty",
		Body:   "Foodhub has become my go-to for business lunches. The dishes are vibrant, balanced, and always beautifully presented.",
		Name:   "Emma Newman",
		Image:  "/images/testimonials1.jpg",
		Rating: 5,
	},
	{
		ID:     "testimonial-02",
		Title:  "I have lunch here every day",
		Body:   "The team remembers my favorite orders and the menu never stops surprising me. Comfort food elevated in the best way.",
		Name:   "Paul Trueman",
		Image:  "/images/testimonials2.jpg",
		Rating: 5,
	},
}
