package dataset

// DefaultRows is the number of examples generated when no row count is given.
const DefaultRows = 1200

// DefaultDataFile is the file the generator writes and the trainer reads.
const DefaultDataFile = "sample_data.csv"

// AmountRange is an inclusive range for generated amounts.
type AmountRange struct {
	Min int
	Max int
}

// Category is a spending category with the item phrases used
// to describe purchases in it.
type Category struct {
	Name   string
	Items  []string
	Amount AmountRange
}

// Config holds the static tables the generator draws from.
type Config struct {
	Categories []Category
	Templates  []string
	Currencies []string
}

var (
	wideRange    = AmountRange{Min: 200, Max: 15000}
	healthRange  = AmountRange{Min: 100, Max: 5000}
	defaultRange = AmountRange{Min: 50, Max: 1000}
)

// Categories is the default category table.
var Categories = []Category{
	{
		Name:   "Food",
		Items:  []string{"groceries", "lunch", "dinner with friends", "coffee", "pizza", "breakfast", "vegetables", "fruits", "takeout food", "restaurant meal", "snacks", "pastries", "ice cream"},
		Amount: defaultRange,
	},
	{
		Name:   "Transport",
		Items:  []string{"uber ride", "taxi fare", "bus ticket", "metro card recharge", "train ticket", "fuel for car", "parking fee", "auto rickshaw fare", "flight ticket", "car service"},
		Amount: wideRange,
	},
	{
		Name:   "Shopping",
		Items:  []string{"new shirt", "jeans", "headphones", "book", "skincare products", "running shoes", "gift", "watch", "laptop", "mobile phone", "furniture", "home decor", "sunglasses"},
		Amount: wideRange,
	},
	{
		Name:   "Utilities",
		Items:  []string{"electricity bill", "internet bill", "phone recharge", "water bill", "gas cylinder", "house rent", "maintenance fee", "DTH recharge", "broadband payment", "subscription service"},
		Amount: wideRange,
	},
	{
		Name:   "Health",
		Items:  []string{"medicines", "doctor's visit fee", "health insurance premium", "vitamins", "band-aids", "lab test", "hospital bill", "dental checkup"},
		Amount: healthRange,
	},
	{
		Name:   "Entertainment",
		Items:  []string{"movie tickets", "concert tickets", "Netflix subscription", "Spotify premium", "video game", "bowling with friends", "amusement park entry", "sports match ticket"},
		Amount: defaultRange,
	},
	{
		Name:   "Education",
		Items:  []string{"online course fee", "textbooks", "stationery", "exam fee", "pen and notebooks", "udemy course", "coursera specialization"},
		Amount: wideRange,
	},
	{
		Name:   "Personal Care",
		Items:  []string{"haircut", "shampoo", "soap", "gym membership", "protein powder", "salon visit", "cosmetics"},
		Amount: defaultRange,
	},
	{
		Name:   "Gifts & Donations",
		Items:  []string{"birthday gift", "donation to charity", "wedding present", "gift for anniversary", "contribution to fundraiser"},
		Amount: defaultRange,
	},
	{
		Name:   "Other",
		Items:  []string{"bank fee", "postage stamp", "home repair", "pet food", "laundry service", "magazine subscription", "software license", "courier charges"},
		Amount: defaultRange,
	},
}

// Templates are the sentence templates. {item}, {amount} and {currency}
// are replaced with the drawn values.
var Templates = []string{
	"bought {item} for {amount} {currency}",
	"paid {amount} {currency} for {item}",
	"spent {amount} on {item}",
	"{item} cost {amount}",
	"just got {item} for {amount} {currency}",
	"purchase of {item} - {amount}",
	"recharged my {item} with {amount}",
	"monthly {item} payment of {amount}",
	"paid for {item}, amount was {amount}",
	"{item} {amount} {currency}",
}

// Currencies are the currency tokens appended to amounts. The empty
// string means no currency token.
var Currencies = []string{"rupees", "rs", "inr", ""}

// DefaultConfig returns the default generator tables.
func DefaultConfig() Config {
	return Config{
		Categories: Categories,
		Templates:  Templates,
		Currencies: Currencies,
	}
}

// Names returns the category names in configuration order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, category := range c.Categories {
		names = append(names, category.Name)
	}

	return names
}
