package catalog

import "github.com/powerfrill/showcase-backend-go/internal/models"

const unsplash = "https://images.unsplash.com/"

// Builtin returns the catalog shipped with the site.
// A fresh copy is returned on every call.
func Builtin() Table {
	return Table{
		Products:   builtinProducts(),
		Categories: builtinCategories(),
		Solutions:  builtinSolutions(),
	}
}

func builtinProducts() []models.Product {
	return []models.Product{
		// Solar panels
		{
			ID:           "mono-facial",
			Category:     "SOLAR PANEL",
			CategoryPath: []string{"Solar Panels", "Mono Facial"},
			Title:        "Mono Facial Solar Panels",
			Subtitle:     "High-Efficiency Single-Side Technology",
			ImageRef:     unsplash + "photo-1509391366360-2e959784a276?w=800",
			Features: []models.Feature{
				{Value: "Up to 22%", Label: "EFFICIENCY"},
				{Value: "Single-Side", Label: "CAPTURE"},
				{Value: "25 Years", Label: "WARRANTY"},
			},
			Description:  "Mono Facial solar panels utilize single-crystalline silicon technology for maximum efficiency. These panels are ideal for residential and commercial installations, offering reliable power generation with a sleek, uniform appearance.",
			SolutionID:   "solar",
			Applications: "Residential, Commercial Roofs",
		},
		{
			ID:           "bi-facial",
			Category:     "SOLAR PANEL",
			CategoryPath: []string{"Solar Panels", "Bi-Facial"},
			Title:        "Bi-Facial Solar Panels",
			Subtitle:     "Dual-Side Energy Capture Technology",
			ImageRef:     unsplash + "photo-1559302504-64aae6ca6b6d?w=800",
			Features: []models.Feature{
				{Value: "Up to 30%", Label: "MORE ENERGY"},
				{Value: "Dual-Side", Label: "CAPTURE"},
				{Value: "Extended", Label: "WARRANTY"},
			},
			Description: "Boost Your Solar Power: Bifacial solar panels capture sunlight on both sides, generating up to 30% more energy than traditional panels. Ideal for reflective surfaces, they maximize your investment in solar.",
			SolutionID:  "solar",
			ProTip:      "Ideal for reflective surfaces like white rooftops, snow, or sand to capture back-side light.",
		},
		{
			ID:           "topcon",
			Category:     "SOLAR PANEL",
			CategoryPath: []string{"Solar Panels", "Topcon"},
			Title:        "TOPCon Solar Panels",
			Subtitle:     "Next-Generation Cell Technology",
			ImageRef:     unsplash + "photo-1508514177221-188b1cf16e9d?w=800",
			Features: []models.Feature{
				{Value: "Up to 25%", Label: "EFFICIENCY"},
				{Value: "Low", Label: "DEGRADATION"},
				{Value: "30 Years", Label: "LIFESPAN"},
			},
			Description: "TOPCon (Tunnel Oxide Passivated Contact) technology represents the cutting edge of solar cell innovation, delivering exceptional efficiency rates and minimal degradation over time for superior long-term performance.",
			SolutionID:  "solar",
		},

		// Autonomous cleaning robotic systems
		{
			ID:           "dobby-r1",
			Category:     "AUTONOMOUS CLEANING ROBOTIC SYSTEMS",
			CategoryPath: []string{"Autonomous Cleaning Robotic Systems", "Dobby R1"},
			Title:        "Dobby R1",
			Subtitle:     "Compact Autonomous Panel Cleaner",
			ImageRef:     unsplash + "photo-1485827404703-89b55fcc595e?w=800",
			Features: []models.Feature{
				{Value: "Autonomous", Label: "OPERATION"},
				{Value: "Waterless", Label: "CLEANING"},
				{Value: "8 Hours", Label: "BATTERY LIFE"},
			},
			Description: "Dobby R1 is a compact, autonomous cleaning robot designed for residential and small commercial solar installations. It navigates panels independently, removing dust and debris without water.",
			SolutionID:  "solar",
		},
		{
			ID:           "dobby-r2",
			Category:     "AUTONOMOUS CLEANING ROBOTIC SYSTEMS",
			CategoryPath: []string{"Autonomous Cleaning Robotic Systems", "Dobby R2"},
			Title:        "Dobby R2",
			Subtitle:     "Industrial-Grade Cleaning Robot",
			ImageRef:     unsplash + "photo-1531746790731-6c087fecd65a?w=800",
			Features: []models.Feature{
				{Value: "Heavy Duty", Label: "PERFORMANCE"},
				{Value: "AI-Powered", Label: "NAVIGATION"},
				{Value: "12 Hours", Label: "BATTERY LIFE"},
			},
			Description: "Dobby R2 is designed for utility-scale solar farms, featuring advanced AI navigation, heavy-duty cleaning capabilities, and extended battery life for large-area coverage.",
			SolutionID:  "solar",
		},

		// Active tracking systems
		{
			ID:           "single-axis-tracker",
			Category:     "ACTIVE TRACKING SYSTEMS",
			CategoryPath: []string{"Active tracking Systems", "Single Axis Tracker"},
			Title:        "Single Axis Tracker",
			Subtitle:     "East-West Solar Tracking",
			ImageRef:     unsplash + "photo-1466611653911-95081537e5b7?w=800",
			Features: []models.Feature{
				{Value: "Up to 25%", Label: "MORE YIELD"},
				{Value: "East-West", Label: "TRACKING"},
				{Value: "Low", Label: "MAINTENANCE"},
			},
			Description: "Single Axis Trackers follow the sun from east to west throughout the day, increasing energy yield by up to 25% compared to fixed installations.",
			SolutionID:  "solar",
		},
		{
			ID:           "dual-axis-tracker",
			Category:     "ACTIVE TRACKING SYSTEMS",
			CategoryPath: []string{"Active tracking Systems", "Dual Axis Tracker"},
			Title:        "Dual Axis Tracker",
			Subtitle:     "Full Sun Path Optimization",
			ImageRef:     unsplash + "photo-1497440001374-f26997328c1b?w=800",
			Features: []models.Feature{
				{Value: "Up to 40%", Label: "MORE YIELD"},
				{Value: "360°", Label: "TRACKING"},
				{Value: "Premium", Label: "PERFORMANCE"},
			},
			Description: "Dual Axis Trackers provide maximum energy capture by following the sun both horizontally and vertically, optimizing panel angles throughout the day and across seasons.",
			SolutionID:  "solar",
		},
		{
			ID:           "weather-mitigation",
			Category:     "ACTIVE TRACKING SYSTEMS",
			CategoryPath: []string{"Active tracking Systems", "Weather Mitigation"},
			Title:        "Weather Mitigation System",
			Subtitle:     "Intelligent Storm Protection",
			ImageRef:     unsplash + "photo-1527482797697-8795b05a13fe?w=800",
			Features: []models.Feature{
				{Value: "AI-Driven", Label: "PROTECTION"},
				{Value: "Real-time", Label: "MONITORING"},
				{Value: "Automatic", Label: "STOW MODE"},
			},
			Description: "Our Weather Mitigation System uses AI-powered weather prediction to automatically adjust and stow solar panels during severe weather events, protecting your investment.",
			SolutionID:  "solar",
		},

		// Energy storage systems
		{
			ID:           "micro-power-banks",
			Category:     "MISCELLANEOUS",
			CategoryPath: []string{"Miscellaneous", "Micro Power Banks"},
			Title:        "Micro Power Banks",
			Subtitle:     "Residential Energy Storage",
			ImageRef:     unsplash + "photo-1620714223084-8fcacc6dfd8d?w=800",
			Features: []models.Feature{
				{Value: "5-15 kWh", Label: "CAPACITY"},
				{Value: "Home", Label: "USE"},
				{Value: "Compact", Label: "DESIGN"},
			},
			Description: "Micro Power Banks provide reliable home energy storage, perfect for residential solar installations seeking energy independence and backup power.",
			SolutionID:  "storage",
		},
		{
			ID:           "enterprise-power-banks",
			Category:     "MISCELLANEOUS",
			CategoryPath: []string{"Miscellaneous", "Enterprise Power Banks"},
			Title:        "Enterprise Power Banks",
			Subtitle:     "Commercial Energy Solutions",
			ImageRef:     unsplash + "photo-1558449028-b53a39d100fc?w=800",
			Features: []models.Feature{
				{Value: "50-500 kWh", Label: "CAPACITY"},
				{Value: "Commercial", Label: "SCALE"},
				{Value: "Modular", Label: "DESIGN"},
			},
			Description: "Enterprise Power Banks deliver scalable energy storage for businesses, enabling peak shaving, demand response, and reliable backup power.",
			SolutionID:  "storage",
		},
		{
			ID:           "energy-farms",
			Category:     "MISCELLANEOUS",
			CategoryPath: []string{"Miscellaneous", "Energy Farms"},
			Title:        "Energy Farms – Containerized Banks",
			Subtitle:     "Large-Scale Containerized Storage",
			ImageRef:     unsplash + "photo-1581092160562-40aa08e78837?w=800",
			Features: []models.Feature{
				{Value: "1-10 MWh", Label: "CAPACITY"},
				{Value: "Containerized", Label: "FORMAT"},
				{Value: "Rapid", Label: "DEPLOYMENT"},
			},
			Description: "Energy Farms utilize standardized shipping containers packed with high-density battery systems for rapid deployment of megawatt-scale storage solutions.",
			SolutionID:  "storage",
		},
		{
			ID:           "utility-scale",
			Category:     "MISCELLANEOUS",
			CategoryPath: []string{"Miscellaneous", "Utility Scale"},
			Title:        "Utility Scale Energy Storage",
			Subtitle:     "Grid-Level Power Solutions",
			ImageRef:     unsplash + "photo-1497435334941-8c899ee9e8e9?w=800",
			Features: []models.Feature{
				{Value: "10+ MWh", Label: "CAPACITY"},
				{Value: "Grid", Label: "INTEGRATION"},
				{Value: "Utility", Label: "GRADE"},
			},
			Description: "Utility Scale Energy Storage provides grid-level power solutions for renewable integration, frequency regulation, and large-scale energy management.",
			SolutionID:  "storage",
		},
		{
			ID:           "mobile-power-banks",
			Category:     "MISCELLANEOUS",
			CategoryPath: []string{"Miscellaneous", "Mobile Power Banks"},
			Title:        "Mobile Power Banks",
			Subtitle:     "Portable Energy Solutions",
			ImageRef:     unsplash + "photo-1516321318423-f06f85e504b3?w=800",
			Features: []models.Feature{
				{Value: "Portable", Label: "DESIGN"},
				{Value: "Quick", Label: "DEPLOY"},
				{Value: "Versatile", Label: "USE"},
			},
			Description: "Mobile Power Banks offer portable energy storage for events, construction sites, emergency response, and temporary power needs.",
			SolutionID:  "storage",
		},

		// Battery packs
		{
			ID:           "lithium-standard",
			Category:     "LITHIUM-ION PACKS",
			CategoryPath: []string{"Lithium-Ion Packs", "Standard Modules"},
			Title:        "Lithium-Ion Standard Packs",
			Subtitle:     "Compact 48V Modules",
			ImageRef:     unsplash + "photo-1558449028-c114ad473d09?w=800",
			Features: []models.Feature{
				{Value: "48V", Label: "VOLTAGE"},
				{Value: "100Ah", Label: "CAPACITY"},
				{Value: "CANbus", Label: "INTERFACE"},
			},
			Description: "Standardized lithium iron phosphate modules for light electric vehicles and home energy storage.",
			SolutionID:  "batteries",
		},
		{
			ID:           "modular-custom",
			Category:     "CUSTOM MODULAR SYSTEMS",
			CategoryPath: []string{"Custom Modular Systems", "High-Power Modules"},
			Title:        "Custom High-Power Packs",
			Subtitle:     "Scalable Energy Solutions",
			ImageRef:     unsplash + "photo-1558449028-b53a39d100fc?w=800",
			Features: []models.Feature{
				{Value: "Custom", Label: "VOLTAGE"},
				{Value: "IP67", Label: "PROTECTION"},
				{Value: "Active", Label: "COOLING"},
			},
			Description: "Bespoke battery pack design and assembly for high-performance industrial applications.",
			SolutionID:  "batteries",
		},
	}
}

func builtinCategories() []models.Category {
	return []models.Category{
		// Solar group
		{
			ID:          "solar-panels",
			Name:        "Solar Panels",
			ImageRef:    unsplash + "photo-1509391366360-2e959784a276?w=1200",
			Description: "Advanced mono-facial, bi-facial, and TOPCon technologies for maximum energy yield.",
			SolutionID:  "solar",
		},
		{
			ID:          "robotic-systems",
			Name:        "Autonomous Cleaning Robotic Systems",
			ImageRef:    unsplash + "photo-1485827404703-89b55fcc595e?w=1200",
			Description: "Intelligent robotic solutions (Dobby R1 & R2) to maintain peak industrial efficiency.",
			SolutionID:  "solar",
		},
		{
			ID:          "tracking-systems",
			Name:        "Active tracking Systems",
			ImageRef:    unsplash + "photo-1466611653911-95081537e5b7?w=1200",
			Description: "Single/Dual axis and weather mitigation systems for full sun path optimization.",
			SolutionID:  "solar",
		},
		{
			ID:          "miscellaneous",
			Name:        "Miscellaneous",
			ImageRef:    unsplash + "photo-1497435334941-8c899ee9e8e9?w=1200",
			Description: "Custom energy components and additional solar power supporting technologies.",
			SolutionID:  "solar",
		},

		// Storage group
		{
			ID:          "residential-storage",
			Name:        "Residential Storage",
			ImageRef:    unsplash + "photo-1620720402163-35f5d1896023?w=1200",
			Description: "Micro power banks and home battery systems for energy independence.",
			SolutionID:  "storage",
		},
		{
			ID:          "industrial-storage",
			Name:        "Industrial Storage",
			ImageRef:    unsplash + "photo-1558449028-2a4066c1b312?w=1200",
			Description: "Enterprise energy farms and utility-scale containerized storage solutions.",
			SolutionID:  "storage",
		},

		// Battery packs group
		{
			ID:          "lithium-packs",
			Name:        "Lithium-Ion Packs",
			ImageRef:    unsplash + "photo-1537462715879-360eeb61a0ad?w=1200",
			Description: "High-density lithium battery modules for diverse industrial applications.",
			SolutionID:  "batteries",
		},
		{
			ID:          "modular-systems",
			Name:        "Custom Modular Systems",
			ImageRef:    unsplash + "photo-1531746790731-6c087fecd65a?w=1200",
			Description: "Customizable battery configurations tailored to specific power requirements.",
			SolutionID:  "batteries",
		},
	}
}

func builtinSolutions() []models.Solution {
	return []models.Solution{
		{
			ID:           "solar",
			Title:        "Solar energy & Solar Power Solutions",
			HeroImageRef: unsplash + "photo-1509391366360-2e959784a276?w=1920",
			Path:         "Solar energy & Solar Power Solutions",
		},
		{
			ID:           "storage",
			Title:        "Energy storage systems",
			HeroImageRef: unsplash + "photo-1620714223084-8fcacc6dfd8d?w=1920",
			Path:         "Energy storage systems",
		},
		{
			ID:           "batteries",
			Title:        "Battery Packs",
			HeroImageRef: unsplash + "photo-1558449028-b53a39d100fc?w=1920",
			Path:         "Battery Packs",
		},
	}
}
