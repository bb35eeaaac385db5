package catalog

import "github.com/BruksfildServices01/luxe-beauties-api/internal/models"

// Seed returns the salon's standard service menu. Each call returns a fresh slice.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Braids & Cornrows",
			Price:       150,
			DurationMin: 180,
			Image:       "https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=400",
			Description: "Authentic African braiding styles including cornrows, box braids, and creative patterns. Perfect for protective styling.",
			Category:    "Braids",
		},
		{
			ID:          2,
			Name:        "Weave Installation",
			Price:       200,
			DurationMin: 150,
			Image:       "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400",
			Description: "Professional weave installation using premium hair extensions for a natural, flawless look.",
			Category:    "Weaves",
		},
		{
			ID:          3,
			Name:        "Wig Installation",
			Price:       120,
			DurationMin: 90,
			Image:       "https://images.unsplash.com/photo-1583834666451-f15d8d922ff1?w=400",
			Description: "Custom wig installation with lace melting and styling for an undetectable, natural appearance.",
			Category:    "Wigs",
		},
		{
			ID:          4,
			Name:        "Dreadlocs/Sister Locs",
			Price:       250,
			DurationMin: 240,
			Image:       "https://images.unsplash.com/photo-1580618672591-eb180b1a973f?w=400",
			Description: "Expert loc installation and maintenance including sister locs, traditional locs, and retwisting services.",
			Category:    "Locs",
		},
		{
			ID:          5,
			Name:        "Natural Hair Styling",
			Price:       80,
			DurationMin: 90,
			Image:       "https://images.unsplash.com/photo-1522337660859-02fbefca4702?w=400",
			Description: "Beautiful natural hairstyles including twist outs, braid outs, wash and go, and updos.",
			Category:    "Natural Hair",
		},
		{
			ID:          6,
			Name:        "Hair Coloring",
			Price:       180,
			DurationMin: 150,
			Image:       "https://images.unsplash.com/photo-1492106087820-71f1a00d2b11?w=400",
			Description: "Professional hair coloring services including highlights, balayage, full color, and color correction.",
			Category:    "Color",
		},
		{
			ID:          7,
			Name:        "Silk Press",
			Price:       100,
			DurationMin: 120,
			Image:       "https://images.unsplash.com/photo-1521590832167-7bcbfaa6381f?w=400",
			Description: "Heat-free silk press for smooth, straight hair while maintaining hair health and natural texture.",
			Category:    "Styling",
		},
		{
			ID:          8,
			Name:        "Hair Treatment",
			Price:       60,
			DurationMin: 60,
			Image:       "https://images.unsplash.com/photo-1519699047748-de8e457a634e?w=400",
			Description: "Deep conditioning treatments, protein treatments, and scalp treatments for optimal hair health.",
			Category:    "Treatment",
		},
	}
}
