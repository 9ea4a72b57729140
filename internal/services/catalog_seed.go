package service

import (
	"strconv"

	"github.com/anuraag-firstaid/storefront/internal/models"
)

// DefaultCatalog returns the built-in product list used to seed the catalog
// record on first load. Ids are derived from the list position so reseeding
// is stable.
func DefaultCatalog() []models.Product {
	defaults := []models.Product{
		{
			Name:        "Plastic First Aid Box",
			Description: "Durable plastic construction for basic first aid needs",
			Price:       299,
			Image:       "/assets/static/PlasticFirstAidBox.jpg",
			Category:    "kits",
			Sizes:       []string{"S", "M", "L"},
			InStock:     true,
		},
		{
			Name:        "Vinyl First Aid Kit",
			Description: "Portable vinyl case with essential medical supplies",
			Price:       399,
			Image:       "/assets/static/VinylFirstAidKit.jpg",
			Category:    "kits",
			Sizes:       []string{"S", "M", "L"},
			InStock:     true,
		},
		{
			Name:        "Transparent First Aid Box",
			Description: "Clear visibility for quick item identification",
			Price:       349,
			Image:       "/assets/static/TransparentBox.jpg",
			Category:    "kits",
			Sizes:       []string{"S", "M", "L"},
			InStock:     true,
		},
		{
			Name:        "Family First Aid Kit",
			Description: "Comprehensive kit for household emergency care",
			Price:       599,
			Image:       "/assets/static/FamilyKit.jpg",
			Category:    "kits",
			Sizes:       []string{"S", "M", "L"},
			InStock:     true,
		},
		{
			Name:        "Sterile Gauze",
			Description: "Medical-grade sterile gauze pads and rolls",
			Price:       149,
			Image:       "/assets/static/SterileGauze.jpg",
			Category:    "consumables",
			Sizes:       []string{"50ml", "100ml", "250ml"},
			InStock:     true,
		},
		{
			Name:        "Adhesive Bandages",
			Description: "Various sizes of adhesive bandages",
			Price:       89,
			Image:       "/assets/static/ab.png",
			Category:    "consumables",
			Sizes:       []string{"Small (1.9×7.2 cm)", "Medium (2.5×7.5 cm)", "Large (3.8×7.5 cm)"},
			InStock:     false,
		},
		{
			Name:        "Antiseptic Wipes",
			Description: "Alcohol-based antiseptic cleaning wipes",
			Price:       129,
			Image:       "/assets/static/AntisepticWipes.jpg",
			Category:    "consumables",
			Sizes:       []string{"10 Wipes", "25 Wipes", "50 Wipes"},
			InStock:     true,
		},
		{
			Name:        "Disposable Gloves",
			Description: "Latex-free disposable examination gloves",
			Price:       199,
			Image:       "/assets/static/DisposableGloves.jpg",
			Category:    "consumables",
			Sizes:       []string{"Small (7 cm)", "Medium (8 cm)", "Large (9 cm)", "Extra-Large (10 cm)"},
			InStock:     true,
		},
		{
			Name:        "Adhesive Tape",
			Description: "Medical adhesive tape for securing bandages",
			Price:       79,
			Image:       "/assets/static/AdhesiveTape.jpg",
			Category:    "consumables",
			Sizes:       []string{"1 cm × 5 m", "2.5 cm × 5 m", "5 cm × 5 m"},
			InStock:     true,
		},
		{
			Name:        "Triangular Bandages",
			Description: "Multi-purpose triangular bandages for slings",
			Price:       159,
			Image:       "/assets/static/TriangularBandages.jpg",
			Category:    "consumables",
			Sizes:       []string{"Adult (96×96×136 cm)", "Child (85×85×120 cm)", "Compact (60×60×85 cm)"},
			InStock:     true,
		},
		{
			Name:        "Scissors and Tweezers",
			Description: "Precision medical instruments",
			Price:       249,
			Image:       "/assets/static/ScissorsAndTweezers.jpg",
			Category:    "specialty",
			Sizes:       []string{"Small (10 cm)", "Standard (12.5 cm)", "Large (15 cm)"},
			InStock:     true,
		},
		{
			Name:        "Antibiotic Ointment",
			Description: "Topical antibiotic for wound care",
			Price:       189,
			Image:       "/assets/static/AntibioticOintment.jpg",
			Category:    "specialty",
			Sizes:       []string{"5 g", "10 g", "15 g"},
			InStock:     false,
		},
		{
			Name:        "Pain Relievers",
			Description: "Over-the-counter pain medication",
			Price:       99,
			Image:       "/assets/static/PainRelievers.jpg",
			Category:    "specialty",
			Sizes:       []string{"10 Tablets", "20 Tablets", "50 Tablets"},
			InStock:     true,
		},
	}

	for i := range defaults {
		defaults[i].ID = "product_" + strconv.Itoa(i)
	}

	return defaults
}
