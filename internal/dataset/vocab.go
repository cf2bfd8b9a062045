package dataset

// Fixed vocabularies. Order matters: draw indexes are part of the
// deterministic output contract, so entries must not be reordered.

var Countries = []string{
	"Mexico", "USA", "Canada", "Colombia", "Spain", "Argentina", "Chile", "Peru",
}

var Categories = []string{
	"Electronics", "Home", "Beauty", "Sports", "Fashion", "Books", "Toys",
}

// PayMethods are the charge methods. Refund adjustments use MethodRefund
// instead of a drawn method.
var PayMethods = []string{
	"card", "paypal", "bank_transfer", "cash_on_delivery",
}

const MethodRefund = "refund"

// Name lists keep their diacritics; emails fold them to ASCII.
var FirstNames = []string{
	"Ana", "Luis", "Carlos", "María", "Sofía", "Juan", "Valeria", "Miguel", "Laura", "Diego",
}

var LastNames = []string{
	"García", "Hernández", "López", "Martínez", "González", "Pérez", "Sánchez", "Ramírez", "Torres", "Flores",
}

var ProductNouns = []string{
	"Headphones", "Blender", "Cream", "Sneakers", "Jersey", "Notebook", "Drone", "Lamp", "Backpack", "Watch",
}

var ProductSuffixes = []string{
	"Pro", "Max", "Mini", "Plus", "Air", "Smart", "Ultra", "Eco", "Lite", "Prime",
}
