package memory

import "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"

func rating(v float64) *float64 { return &v }

// SeedProducts is the starter marketplace catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Ankara Fabric Tote Bag", Price: 4500, Image: "/images/product-tote.jpg", Categories: []string{"accessories", "fashion"}, Rating: rating(4.5), Merchant: "Lagos Crafts", Description: "Beautiful handcrafted Ankara tote bag"},
		{ID: 2, Title: "Handcrafted Adire Wall Art", Price: 15000, Image: "/images/product-adire.jpg", Categories: []string{"art", "home-decor"}, Rating: rating(5.0), Merchant: "Yoruba Artisans", Badge: "Bestseller"},
		{ID: 3, Title: "Premium Shea Butter (100g)", Price: 3000, Image: "/images/product-shea.jpg", Categories: []string{"beauty", "wellness"}, Rating: rating(4.8), Merchant: "Natural Glow Nigeria", Description: "Unrefined natural shea butter for skin and hair"},
		{ID: 4, Title: "Modern Ankara Shirt - Men", Price: 8500, Image: "/images/product-shirt.jpg", Categories: []string{"fashion", "clothing"}, Rating: rating(4.2), Merchant: "AfriThreads"},
		{ID: 5, Title: "Handwoven Raffia Slippers", Price: 5500, Image: "/images/product-slippers.jpg", Categories: []string{"fashion", "accessories"}, Rating: rating(4.6), Merchant: "Artisan Footwear"},
		{ID: 6, Title: "Nigerian Spice Mix Set", Price: 3800, Image: "/images/product-spice.jpg", Categories: []string{"food", "groceries"}, Rating: rating(4.9), Merchant: "Naija Flavors", Description: "Suya, pepper soup and jollof spice blends"},
		{ID: 7, Title: "Beaded Statement Necklace", Price: 7200, Image: "/images/product-necklace.jpg", Categories: []string{"accessories", "fashion"}, Rating: rating(4.7), Merchant: "Bead Culture"},
		{ID: 8, Title: "Contemporary African Art Print", Price: 12000, Image: "/images/product-print.jpg", Categories: []string{"art", "home-decor"}, Rating: rating(4.4), Merchant: "Nigerian Canvas"},
		{ID: 9, Title: "Traditional Ogene Instrument", Price: 22000, Image: "/images/product-ogene.jpg", Categories: []string{"music", "traditional"}, Rating: rating(4.9), Merchant: "Cultural Artifacts"},
		{ID: 10, Title: "Organic Hibiscus Tea (50g)", Price: 1800, Image: "/images/product-zobo.jpg", Categories: []string{"food", "beverages"}, Rating: rating(4.7), Merchant: "Organic Farms Nigeria", Description: "Dried zobo leaves"},
		{ID: 11, Title: "Hand-carved Wooden Bowl", Price: 7500, Image: "/images/product-bowl.jpg", Categories: []string{"home-decor", "kitchenware"}, Rating: rating(4.6), Merchant: "Wood Masters"},
		{ID: 12, Title: "Nigerian Folklore Book Collection", Price: 9000, Image: "/images/product-books.jpg", Categories: []string{"books", "media"}, Rating: rating(4.8), Merchant: "Heritage Publishers"},
		{ID: 13, Title: "Garri", Price: 2500, Image: "/images/product-garri.jpg", Categories: []string{"food", "groceries"}, Rating: rating(4.3), Merchant: "Mama Nkechi Foods", Description: "White garri, 1kg"},
		{ID: 14, Title: "Yellow Garri (2kg)", Price: 3200, Image: "/images/product-yellow-garri.jpg", Categories: []string{"food", "groceries"}, Merchant: "Ijebu Market Store", Description: "Palm-oil fried garri"},
		{ID: 15, Title: "Ijebu Garri (1kg)", Price: 2500, Image: "/images/product-ijebu-garri.jpg", Categories: []string{"food", "groceries"}, Rating: rating(4.6), Merchant: "Ijebu Market Store", Badge: "New"},
	}
}
