package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedProducts is the full bakery assortment. Prices are list prices
// in dollars; carts derive from these live, orders freeze them.
var seedProducts = []Product{
	{
		ID:          "cookie-1",
		Name:        "Chocolate Chip Cookies",
		Description: "Classic chocolate chip cookies with rich semi-sweet chocolate chunks and a soft, chewy center.",
		Price:       price("3.99"),
		ImageURL:    "/images/chocolate-chip-cookies.png",
		Category:    CategoryCookies,
		BestSeller:  true,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Eggs", "Chocolate chips", "Vanilla extract"},
		NutritionalInfo: &NutritionalInfo{
			Calories: 180,
			Protein:  2,
			Carbs:    24,
			Fat:      9,
		},
	},
	{
		ID:          "cookie-2",
		Name:        "Double Chocolate Cookies",
		Description: "Indulgent double chocolate cookies with both cocoa powder and chocolate chunks.",
		Price:       price("4.29"),
		ImageURL:    "/images/double-chocolate-cookies.png",
		Category:    CategoryCookies,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Eggs", "Cocoa powder", "Chocolate chunks", "Vanilla extract"},
	},
	{
		ID:          "cookie-3",
		Name:        "Oatmeal Raisin Cookies",
		Description: "Hearty oatmeal cookies with chewy raisins and a hint of cinnamon.",
		Price:       price("3.79"),
		ImageURL:    "/images/oatmeal-raisin-cookies.png",
		Category:    CategoryCookies,
		Ingredients: []string{"Oats", "Flour", "Butter", "Sugar", "Eggs", "Raisins", "Cinnamon", "Vanilla extract"},
	},
	{
		ID:          "cookie-4",
		Name:        "Peanut Butter Cookies",
		Description: "Rich peanut butter cookies with the perfect balance of sweet and salty.",
		Price:       price("4.49"),
		ImageURL:    "/images/peanut-butter-cookies.png",
		Category:    CategoryCookies,
		Ingredients: []string{"Flour", "Peanut butter", "Sugar", "Eggs", "Vanilla extract"},
	},
	{
		ID:          "cookie-5",
		Name:        "Shortbread Cookies",
		Description: "Traditional buttery Scottish shortbread cookies with a delicate, crumbly texture.",
		Price:       price("3.89"),
		ImageURL:    "/images/shortbread-cookies.png",
		Category:    CategoryCookies,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Salt"},
	},
	{
		ID:          "cookie-6",
		Name:        "Ginger Snaps",
		Description: "Crisp, spiced cookies with a distinctive ginger flavor and warming spices.",
		Price:       price("4.19"),
		ImageURL:    "/images/ginger-snaps.png",
		Category:    CategoryCookies,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Molasses", "Ginger", "Cinnamon", "Cloves"},
	},
	{
		ID:          "cake-1",
		Name:        "Classic Chocolate Cake",
		Description: "Rich, moist chocolate cake layered with smooth chocolate ganache frosting.",
		Price:       price("32.99"),
		ImageURL:    "/images/classic-chocolate-cake.png",
		Category:    CategoryCake,
		BestSeller:  true,
		Ingredients: []string{"Flour", "Sugar", "Cocoa powder", "Butter", "Eggs", "Vanilla extract", "Sour cream", "Chocolate ganache"},
	},
	{
		ID:          "cake-2",
		Name:        "Red Velvet Cake",
		Description: "Southern classic red velvet cake with cream cheese frosting.",
		Price:       price("36.99"),
		ImageURL:    "/images/red-velvet-cake.png",
		Category:    CategoryCake,
		Featured:    true,
		Ingredients: []string{"Flour", "Sugar", "Cocoa powder", "Butter", "Eggs", "Buttermilk", "Red food coloring", "Cream cheese"},
	},
	{
		ID:          "cake-3",
		Name:        "Carrot Cake",
		Description: "Spiced carrot cake with walnuts, topped with cream cheese frosting.",
		Price:       price("34.99"),
		ImageURL:    "/images/carrot-cake.png",
		Category:    CategoryCake,
		Ingredients: []string{"Flour", "Sugar", "Carrots", "Eggs", "Oil", "Cinnamon", "Walnuts", "Cream cheese"},
	},
	{
		ID:          "cake-4",
		Name:        "Lemon Drizzle Cake",
		Description: "Zesty lemon sponge cake with a tangy lemon glaze.",
		Price:       price("28.99"),
		ImageURL:    "/images/lemon-drizzle-cake.png",
		Category:    CategoryCake,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Eggs", "Lemons", "Yogurt"},
	},
	{
		ID:          "cake-5",
		Name:        "Tiramisu Cake",
		Description: "Italian-inspired cake with layers of coffee-soaked sponge and mascarpone cream.",
		Price:       price("38.99"),
		ImageURL:    "/images/tiramisu-cake.png",
		Category:    CategoryCake,
		Ingredients: []string{"Ladyfingers", "Mascarpone", "Eggs", "Sugar", "Coffee", "Cocoa powder"},
	},
	{
		ID:          "cake-6",
		Name:        "Black Forest Cake",
		Description: "German chocolate cake with cherry filling and whipped cream.",
		Price:       price("38.99"),
		ImageURL:    "/images/black-forest-cake.png",
		Category:    CategoryCake,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Eggs", "Cocoa powder", "Cherries", "Whipped cream", "Kirsch"},
	},
	{
		ID:          "cake-7",
		Name:        "Opera Cake",
		Description: "Elegant French cake with layers of almond sponge, coffee buttercream, and chocolate ganache.",
		Price:       price("42.99"),
		ImageURL:    "/images/opera-cake.png",
		Category:    CategoryCake,
		Ingredients: []string{"Almond flour", "Eggs", "Sugar", "Coffee", "Chocolate", "Butter"},
	},
	{
		ID:          "bretzel-1",
		Name:        "Classic Bavarian Pretzel",
		Description: "Traditional Bavarian-style pretzel with a dark, crispy outside and soft inside.",
		Price:       price("3.49"),
		ImageURL:    "/images/classic-bavarian-pretzel.png",
		Category:    CategoryBretzel,
		BestSeller:  true,
		Ingredients: []string{"Flour", "Yeast", "Water", "Salt", "Baking soda", "Butter"},
	},
	{
		ID:          "bretzel-2",
		Name:        "Cheese-Filled Pretzel",
		Description: "Soft pretzel filled with melty cheese for an extra savory treat.",
		Price:       price("4.49"),
		ImageURL:    "/images/cheese-filled-pretzel.png",
		Category:    CategoryBretzel,
		Ingredients: []string{"Flour", "Yeast", "Water", "Salt", "Cheese", "Butter"},
	},
	{
		ID:          "pastry-1",
		Name:        "Classic Éclair",
		Description: "Light choux pastry filled with vanilla cream and topped with chocolate ganache.",
		Price:       price("4.99"),
		ImageURL:    "/images/classic-eclair.png",
		Category:    CategoryPastries,
		BestSeller:  true,
		Ingredients: []string{"Flour", "Butter", "Eggs", "Sugar", "Milk", "Cream", "Vanilla", "Chocolate"},
	},
	{
		ID:          "pastry-2",
		Name:        "Fruit Tart",
		Description: "Buttery tart shell filled with vanilla custard and topped with fresh seasonal fruits.",
		Price:       price("5.99"),
		ImageURL:    "/images/fruit-tart.png",
		Category:    CategoryPastries,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Eggs", "Vanilla", "Milk", "Seasonal fruits"},
	},
	{
		ID:          "pastry-3",
		Name:        "Danish Pastry",
		Description: "Flaky, buttery Danish pastry with almond filling and icing.",
		Price:       price("4.79"),
		ImageURL:    "/images/danish-pastry.png",
		Category:    CategoryPastries,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Eggs", "Yeast", "Almond paste"},
	},
	{
		ID:          "pastry-4",
		Name:        "Mille-feuille",
		Description: "Delicate French pastry with layers of puff pastry and vanilla cream, topped with icing.",
		Price:       price("6.49"),
		ImageURL:    "/images/mille-feuille.png",
		Category:    CategoryPastries,
		Ingredients: []string{"Puff pastry", "Milk", "Eggs", "Sugar", "Vanilla", "Butter"},
	},
	{
		ID:          "pastry-5",
		Name:        "Cinnamon Roll",
		Description: "Soft, spiraled pastry with cinnamon-sugar filling and vanilla glaze.",
		Price:       price("4.29"),
		ImageURL:    "/images/cinnamon-roll.png",
		Category:    CategoryPastries,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Eggs", "Milk", "Cinnamon", "Vanilla"},
	},
	{
		ID:          "pastry-6",
		Name:        "Kouign-Amann",
		Description: "Buttery, flaky Breton pastry with caramelized sugar layers.",
		Price:       price("5.49"),
		ImageURL:    "/images/kouign-amann.png",
		Category:    CategoryPastries,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Salt", "Yeast"},
	},
	{
		ID:          "pastry-7",
		Name:        "Paris-Brest",
		Description: "Ring-shaped choux pastry filled with praline cream, created to commemorate the Paris-Brest bicycle race.",
		Price:       price("6.99"),
		ImageURL:    "/images/paris-brest.png",
		Category:    CategoryPastries,
		Ingredients: []string{"Flour", "Butter", "Eggs", "Sugar", "Hazelnuts", "Almonds", "Cream"},
	},
	{
		ID:          "croissant-1",
		Name:        "Classic Butter Croissant",
		Description: "Traditional French croissant with a flaky, buttery texture.",
		Price:       price("3.29"),
		ImageURL:    "/images/classic-butter-croissant.png",
		Category:    CategoryCroissant,
		BestSeller:  true,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Yeast", "Milk", "Salt"},
	},
	{
		ID:          "croissant-2",
		Name:        "Almond Croissant",
		Description: "Butter croissant filled with almond cream and topped with sliced almonds.",
		Price:       price("4.29"),
		ImageURL:    "/images/almond-croissant.png",
		Category:    CategoryCroissant,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Yeast", "Milk", "Salt", "Almond cream", "Sliced almonds"},
	},
	{
		ID:          "croissant-3",
		Name:        "Chocolate Croissant",
		Description: "Buttery croissant filled with rich chocolate batons.",
		Price:       price("3.99"),
		ImageURL:    "/images/chocolate-croissant.png",
		Category:    CategoryCroissant,
		Ingredients: []string{"Flour", "Butter", "Sugar", "Yeast", "Milk", "Salt", "Dark chocolate"},
	},
	{
		ID:          "bagel-1",
		Name:        "Plain Bagel",
		Description: "Chewy, traditional plain bagel, perfect with cream cheese or as a sandwich.",
		Price:       price("2.49"),
		ImageURL:    "/images/plain-bagel.png",
		Category:    CategoryBagel,
		BestSeller:  true,
		Ingredients: []string{"Flour", "Water", "Yeast", "Salt", "Malt extract"},
	},
	{
		ID:          "bagel-2",
		Name:        "Everything Bagel",
		Description: "Classic bagel topped with a mix of sesame seeds, poppy seeds, onion, and garlic.",
		Price:       price("2.79"),
		ImageURL:    "/images/everything-bagel.png",
		Category:    CategoryBagel,
		Ingredients: []string{"Flour", "Water", "Yeast", "Salt", "Malt extract", "Sesame seeds", "Poppy seeds", "Dried garlic", "Dried onion"},
	},
	{
		ID:          "bagel-3",
		Name:        "Cinnamon Raisin Bagel",
		Description: "Sweet bagel with cinnamon and plump raisins throughout.",
		Price:       price("2.99"),
		ImageURL:    "/images/cinnamon-raisin-bagel.png",
		Category:    CategoryBagel,
		Ingredients: []string{"Flour", "Water", "Yeast", "Salt", "Malt extract", "Cinnamon", "Raisins", "Sugar"},
	},
	{
		ID:          "bread-1",
		Name:        "Artisan Sourdough",
		Description: "Traditional sourdough bread with a crispy crust and tangy flavor profile.",
		Price:       price("5.99"),
		ImageURL:    "/images/artisan-sourdough.png",
		Category:    CategoryBread,
		BestSeller:  true,
		Ingredients: []string{"Flour", "Water", "Salt", "Sourdough starter"},
		NutritionalInfo: &NutritionalInfo{
			Calories: 120,
			Protein:  4,
			Carbs:    23,
			Fat:      0.5,
		},
	},
	{
		ID:          "bread-2",
		Name:        "Rustic Baguette",
		Description: "Classic French baguette with a crispy exterior and light, airy interior.",
		Price:       price("3.49"),
		ImageURL:    "/images/rustic-baguette.png",
		Category:    CategoryBread,
		Ingredients: []string{"Flour", "Water", "Yeast", "Salt"},
	},
	{
		ID:          "bread-3",
		Name:        "Whole Grain Loaf",
		Description: "Nutritious whole grain bread packed with seeds and grains.",
		Price:       price("4.99"),
		ImageURL:    "/images/whole-grain-loaf.png",
		Category:    CategoryBread,
		Ingredients: []string{"Whole wheat flour", "Water", "Yeast", "Honey", "Oats", "Flax seeds", "Sunflower seeds"},
	},
	{
		ID:          "bread-4",
		Name:        "Ciabatta",
		Description: "Italian bread with a light, airy texture and crisp crust.",
		Price:       price("4.49"),
		ImageURL:    "/images/ciabatta.png",
		Category:    CategoryBread,
		Ingredients: []string{"Flour", "Water", "Olive oil", "Yeast", "Salt"},
	},
	{
		ID:          "bread-5",
		Name:        "Brioche Loaf",
		Description: "Rich, buttery French bread perfect for breakfast toast or sandwiches.",
		Price:       price("8.99"),
		ImageURL:    "/images/brioche-loaf.png",
		Category:    CategoryBread,
		Ingredients: []string{"Flour", "Butter", "Eggs", "Milk", "Sugar", "Yeast", "Salt"},
	},
	{
		ID:          "bread-6",
		Name:        "Rye Bread",
		Description: "Hearty rye bread with a dense texture and rich flavor.",
		Price:       price("7.29"),
		ImageURL:    "/images/rye-bread.png",
		Category:    CategoryBread,
		Ingredients: []string{"Rye flour", "Wheat flour", "Caraway seeds", "Molasses", "Yeast", "Salt"},
	},
}
