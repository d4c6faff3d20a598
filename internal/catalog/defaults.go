// Package catalog holds the bundled reference data the service ships
// with. The database is seeded from these defaults so that symptom
// diagnosis works before any external catalog sync has happened.
package catalog

import (
	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// DefaultCrops returns the bundled crop catalog covering the major
// Indian crop categories.
func DefaultCrops() []*entities.Crop {
	return []*entities.Crop{
		// Cereals
		{
			ID:               "rice",
			Name:             "Rice",
			NameHindi:        "धान / चावल",
			ScientificName:   "Oryza sativa",
			Category:         entities.CategoryCereals,
			Seasons:          []entities.CropSeason{entities.SeasonKharif},
			Regions:          []entities.Region{entities.RegionNorth, entities.RegionEast, entities.RegionSouth},
			Description:      "Staple cereal crop of India, grows in flooded fields",
			DescriptionHindi: "भारत की मुख्य अनाज फसल, जलमग्न खेतों में उगती है",
			CommonDiseases:   []string{"rice_blast", "bacterial_blight", "brown_spot"},
			WaterRequirement: entities.WaterVeryHigh,
			SoilTypes:        []entities.SoilType{entities.SoilAlluvial, entities.SoilClayey},
		},
		{
			ID:               "wheat",
			Name:             "Wheat",
			NameHindi:        "गेहूं",
			ScientificName:   "Triticum aestivum",
			Category:         entities.CategoryCereals,
			Seasons:          []entities.CropSeason{entities.SeasonRabi},
			Regions:          []entities.Region{entities.RegionNorth, entities.RegionCentral},
			Description:      "Major rabi crop grown in winter season",
			DescriptionHindi: "सर्दी के मौसम में उगाई जाने वाली प्रमुख रबी फसल",
			CommonDiseases:   []string{"wheat_rust", "powdery_mildew", "karnal_bunt"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilAlluvial},
		},
		{
			ID:               "maize",
			Name:             "Maize",
			NameHindi:        "मक्का",
			ScientificName:   "Zea mays",
			Category:         entities.CategoryCereals,
			Seasons:          []entities.CropSeason{entities.SeasonKharif, entities.SeasonRabi},
			Regions:          allRegions(),
			Description:      "Versatile cereal crop grown across India",
			DescriptionHindi: "भारत भर में उगाई जाने वाली बहुमुखी अनाज फसल",
			CommonDiseases:   []string{"maize_streak", "northern_blight", "stem_borer"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilSandy},
		},

		// Pulses
		{
			ID:               "chickpea",
			Name:             "Chickpea",
			NameHindi:        "चना",
			ScientificName:   "Cicer arietinum",
			Category:         entities.CategoryPulses,
			Seasons:          []entities.CropSeason{entities.SeasonRabi},
			Regions:          []entities.Region{entities.RegionCentral, entities.RegionNorth},
			Description:      "Important pulse crop rich in protein",
			DescriptionHindi: "प्रोटीन से भरपूर महत्वपूर्ण दाल फसल",
			CommonDiseases:   []string{"wilt", "root_rot", "ascochyta_blight"},
			WaterRequirement: entities.WaterLow,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilBlack},
		},
		{
			ID:               "pigeon_pea",
			Name:             "Pigeon Pea",
			NameHindi:        "अरहर / तुअर",
			ScientificName:   "Cajanus cajan",
			Category:         entities.CategoryPulses,
			Seasons:          []entities.CropSeason{entities.SeasonKharif},
			Regions:          []entities.Region{entities.RegionCentral, entities.RegionSouth},
			Description:      "Popular dal crop in India",
			DescriptionHindi: "भारत में लोकप्रिय दाल फसल",
			CommonDiseases:   []string{"wilt", "sterility_mosaic", "pod_borer"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilRed},
		},

		// Vegetables
		{
			ID:               "tomato",
			Name:             "Tomato",
			NameHindi:        "टमाटर",
			ScientificName:   "Solanum lycopersicum",
			Category:         entities.CategoryVegetables,
			Seasons:          []entities.CropSeason{entities.SeasonRabi, entities.SeasonKharif},
			Regions:          allRegions(),
			Description:      "Widely cultivated vegetable crop",
			DescriptionHindi: "व्यापक रूप से उगाई जाने वाली सब्जी",
			CommonDiseases:   []string{"early_blight", "late_blight", "leaf_curl", "bacterial_wilt"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilSandy},
		},
		{
			ID:               "potato",
			Name:             "Potato",
			NameHindi:        "आलू",
			ScientificName:   "Solanum tuberosum",
			Category:         entities.CategoryVegetables,
			Seasons:          []entities.CropSeason{entities.SeasonRabi},
			Regions:          []entities.Region{entities.RegionNorth, entities.RegionEast},
			Description:      "Major tuber crop grown in winter",
			DescriptionHindi: "सर्दियों में उगाई जाने वाली प्रमुख कंद फसल",
			CommonDiseases:   []string{"late_blight", "early_blight", "black_scurf"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilSandy},
		},
		{
			ID:               "onion",
			Name:             "Onion",
			NameHindi:        "प्याज",
			ScientificName:   "Allium cepa",
			Category:         entities.CategoryVegetables,
			Seasons:          []entities.CropSeason{entities.SeasonRabi, entities.SeasonKharif},
			Regions:          []entities.Region{entities.RegionWest, entities.RegionCentral, entities.RegionSouth},
			Description:      "Important bulb vegetable crop",
			DescriptionHindi: "महत्वपूर्ण कंद सब्जी फसल",
			CommonDiseases:   []string{"purple_blotch", "stemphylium_blight", "thrips"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilAlluvial},
		},
		{
			ID:               "brinjal",
			Name:             "Brinjal",
			NameHindi:        "बैंगन",
			ScientificName:   "Solanum melongena",
			Category:         entities.CategoryVegetables,
			Seasons:          []entities.CropSeason{entities.SeasonKharif, entities.SeasonRabi},
			Regions:          allRegions(),
			Description:      "Popular vegetable across India",
			DescriptionHindi: "पूरे भारत में लोकप्रिय सब्जी",
			CommonDiseases:   []string{"bacterial_wilt", "fruit_borer", "phomopsis_blight"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilSandy},
		},

		// Fruits
		{
			ID:               "mango",
			Name:             "Mango",
			NameHindi:        "आम",
			ScientificName:   "Mangifera indica",
			Category:         entities.CategoryFruits,
			Seasons:          []entities.CropSeason{entities.SeasonPerennial},
			Regions:          allRegions(),
			Description:      "King of fruits, national fruit of India",
			DescriptionHindi: "फलों का राजा, भारत का राष्ट्रीय फल",
			CommonDiseases:   []string{"anthracnose", "powdery_mildew", "mango_malformation"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilAlluvial, entities.SoilLaterite, entities.SoilRed},
		},
		{
			ID:               "banana",
			Name:             "Banana",
			NameHindi:        "केला",
			ScientificName:   "Musa",
			Category:         entities.CategoryFruits,
			Seasons:          []entities.CropSeason{entities.SeasonPerennial},
			Regions:          []entities.Region{entities.RegionSouth, entities.RegionWest, entities.RegionEast},
			Description:      "Major fruit crop of tropical India",
			DescriptionHindi: "उष्णकटिबंधीय भारत की प्रमुख फल फसल",
			CommonDiseases:   []string{"panama_disease", "sigatoka", "bunchy_top"},
			WaterRequirement: entities.WaterHigh,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilAlluvial},
		},

		// Oilseeds
		{
			ID:               "groundnut",
			Name:             "Groundnut",
			NameHindi:        "मूंगफली",
			ScientificName:   "Arachis hypogaea",
			Category:         entities.CategoryOilseeds,
			Seasons:          []entities.CropSeason{entities.SeasonKharif},
			Regions:          []entities.Region{entities.RegionWest, entities.RegionSouth},
			Description:      "Major oilseed crop of India",
			DescriptionHindi: "भारत की प्रमुख तिलहन फसल",
			CommonDiseases:   []string{"tikka_disease", "collar_rot", "rust"},
			WaterRequirement: entities.WaterLow,
			SoilTypes:        []entities.SoilType{entities.SoilSandy, entities.SoilLoamy},
		},
		{
			ID:               "mustard",
			Name:             "Mustard",
			NameHindi:        "सरसों",
			ScientificName:   "Brassica juncea",
			Category:         entities.CategoryOilseeds,
			Seasons:          []entities.CropSeason{entities.SeasonRabi},
			Regions:          []entities.Region{entities.RegionNorth, entities.RegionCentral},
			Description:      "Important winter oilseed crop",
			DescriptionHindi: "महत्वपूर्ण सर्दी की तिलहन फसल",
			CommonDiseases:   []string{"alternaria_blight", "white_rust", "aphid_infestation"},
			WaterRequirement: entities.WaterLow,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilSandy},
		},

		// Cash crops
		{
			ID:               "cotton",
			Name:             "Cotton",
			NameHindi:        "कपास",
			ScientificName:   "Gossypium",
			Category:         entities.CategoryFibers,
			Seasons:          []entities.CropSeason{entities.SeasonKharif},
			Regions:          []entities.Region{entities.RegionWest, entities.RegionCentral, entities.RegionSouth},
			Description:      "White gold of Indian agriculture",
			DescriptionHindi: "भारतीय कृषि का सफेद सोना",
			CommonDiseases:   []string{"bollworm", "whitefly", "bacterial_blight", "fusarium_wilt"},
			WaterRequirement: entities.WaterModerate,
			SoilTypes:        []entities.SoilType{entities.SoilBlack, entities.SoilAlluvial},
		},
		{
			ID:               "sugarcane",
			Name:             "Sugarcane",
			NameHindi:        "गन्ना",
			ScientificName:   "Saccharum officinarum",
			Category:         entities.CategorySugarcane,
			Seasons:          []entities.CropSeason{entities.SeasonPerennial},
			Regions:          []entities.Region{entities.RegionNorth, entities.RegionSouth, entities.RegionWest},
			Description:      "Major sugar-producing crop",
			DescriptionHindi: "प्रमुख चीनी उत्पादक फसल",
			CommonDiseases:   []string{"red_rot", "smut", "grassy_shoot"},
			WaterRequirement: entities.WaterVeryHigh,
			SoilTypes:        []entities.SoilType{entities.SoilLoamy, entities.SoilAlluvial},
		},
	}
}

// DefaultDiseases returns the bundled disease catalog. Disease symptoms
// reference catalog symptom IDs so symptom-based diagnosis works against
// the seeded data.
func DefaultDiseases() []*entities.Disease {
	return []*entities.Disease{
		{
			ID:               "rice_blast",
			Name:             "Rice Blast",
			NameHindi:        "धान का ब्लास्ट",
			Type:             entities.DiseaseFungal,
			Severity:         entities.SeverityHigh,
			Description:      "Wind-borne spores spread rapidly in humid conditions",
			DescriptionHindi: "हवा से फैलने वाले बीजाणु नम स्थितियों में तेजी से फैलते हैं",
			AffectedCrops:    []string{"rice"},
			Symptoms: []entities.Symptom{
				{
					ID:               "leaf_spots",
					Name:             "Leaf spots",
					NameHindi:        "पत्ती पर धब्बे",
					Description:      "Diamond-shaped spots with gray centers",
					DescriptionHindi: "हीरे के आकार के धब्बे जिनके बीच में भूरा रंग",
					AffectedPart:     entities.PartLeaf,
				},
			},
			Causes: []string{"Fungus Magnaporthe oryzae", "High humidity", "Excessive nitrogen"},
			OrganicTreatments: []entities.Treatment{
				{
					ID:               "trichoderma_spray",
					Name:             "Trichoderma spray",
					NameHindi:        "ट्राइकोडर्मा स्प्रे",
					Type:             entities.TreatmentOrganic,
					Description:      "Apply Trichoderma viride fungal spray",
					DescriptionHindi: "ट्राइकोडर्मा विरिडी फफूंद स्प्रे लगाएं",
					Method:           "Foliar spray",
					Frequency:        "Every 10-15 days",
				},
			},
			ChemicalTreatments: []entities.Treatment{
				{
					ID:               "tricyclazole",
					Name:             "Tricyclazole",
					NameHindi:        "ट्राइसाइक्लाज़ोल",
					Type:             entities.TreatmentChemical,
					Description:      "Systemic fungicide for blast control",
					DescriptionHindi: "ब्लास्ट नियंत्रण के लिए प्रणालीगत कवकनाशी",
					Method:           "Foliar spray",
					Frequency:        "2-3 sprays at 10-day intervals",
					Precautions:      []string{"Wear protective gear", "Avoid spraying in wind"},
				},
			},
			PreventiveMeasures:      []string{"Use resistant varieties", "Balanced fertilization", "Proper water management"},
			PreventiveMeasuresHindi: []string{"प्रतिरोधी किस्मों का उपयोग करें", "संतुलित उर्वरक", "उचित जल प्रबंधन"},
		},
		{
			ID:               "wheat_rust",
			Name:             "Wheat Rust",
			NameHindi:        "गेहूं का रतुआ",
			Type:             entities.DiseaseFungal,
			Severity:         entities.SeverityHigh,
			Description:      "Wind-dispersed spores can travel long distances",
			DescriptionHindi: "हवा से फैलने वाले बीजाणु लंबी दूरी तक जा सकते हैं",
			AffectedCrops:    []string{"wheat"},
			Symptoms: []entities.Symptom{
				{
					ID:               "orange_pustules",
					Name:             "Orange pustules",
					NameHindi:        "नारंगी फुंसी",
					Description:      "Orange-brown powdery pustules on leaves",
					DescriptionHindi: "पत्तियों पर नारंगी-भूरी पाउडर जैसी फुंसी",
					AffectedPart:     entities.PartLeaf,
				},
			},
			Causes: []string{"Puccinia fungi", "Cool and humid weather", "Susceptible varieties"},
			OrganicTreatments: []entities.Treatment{
				{
					ID:               "neem_oil_spray",
					Name:             "Neem oil spray",
					NameHindi:        "नीम तेल स्प्रे",
					Type:             entities.TreatmentOrganic,
					Description:      "Apply neem oil as preventive measure",
					DescriptionHindi: "रोकथाम के लिए नीम का तेल लगाएं",
					Method:           "Foliar spray",
					Frequency:        "Weekly during disease-prone period",
				},
			},
			ChemicalTreatments: []entities.Treatment{
				{
					ID:               "propiconazole",
					Name:             "Propiconazole",
					NameHindi:        "प्रोपिकोनाज़ोल",
					Type:             entities.TreatmentChemical,
					Description:      "Effective systemic fungicide for rust",
					DescriptionHindi: "रतुआ के लिए प्रभावी प्रणालीगत कवकनाशी",
					Method:           "Foliar spray",
					Frequency:        "At disease appearance, repeat after 15 days",
					Precautions:      []string{"Apply in evening", "Do not apply near harvest"},
				},
			},
			PreventiveMeasures:      []string{"Grow resistant varieties", "Early sowing", "Remove volunteer plants"},
			PreventiveMeasuresHindi: []string{"प्रतिरोधी किस्में उगाएं", "जल्दी बुवाई", "स्वयंसेवी पौधे हटाएं"},
		},
		{
			ID:               "early_blight",
			Name:             "Early Blight",
			NameHindi:        "अगेती अंगमारी",
			Type:             entities.DiseaseFungal,
			Severity:         entities.SeverityModerate,
			Description:      "Spreads through infected plant debris and rain splash",
			DescriptionHindi: "संक्रमित पौधे के अवशेषों और बारिश की बौछार से फैलता है",
			AffectedCrops:    []string{"tomato", "potato"},
			Symptoms: []entities.Symptom{
				{
					ID:               "target_spots",
					Name:             "Target-shaped spots",
					NameHindi:        "लक्ष्य के आकार के धब्बे",
					Description:      "Concentric ring patterns on lower leaves",
					DescriptionHindi: "निचली पत्तियों पर संकेंद्रित वलय पैटर्न",
					AffectedPart:     entities.PartLeaf,
				},
			},
			Causes: []string{"Alternaria solani fungus", "Warm and humid weather", "Poor air circulation"},
			OrganicTreatments: []entities.Treatment{
				{
					ID:               "copper_fungicide",
					Name:             "Copper fungicide",
					NameHindi:        "तांबा कवकनाशी",
					Type:             entities.TreatmentOrganic,
					Description:      "Bordeaux mixture application",
					DescriptionHindi: "बोर्डो मिश्रण का प्रयोग",
					Method:           "Foliar spray",
					Frequency:        "Every 7-10 days",
				},
			},
			ChemicalTreatments: []entities.Treatment{
				{
					ID:               "mancozeb",
					Name:             "Mancozeb",
					NameHindi:        "मैनकोज़ेब",
					Type:             entities.TreatmentChemical,
					Description:      "Broad-spectrum protective fungicide",
					DescriptionHindi: "व्यापक स्पेक्ट्रम सुरक्षात्मक कवकनाशी",
					Method:           "Foliar spray",
					Frequency:        "Every 10-14 days",
					Precautions:      []string{"Wear mask", "Maintain safety interval before harvest"},
				},
			},
			PreventiveMeasures:      []string{"Crop rotation", "Remove infected debris", "Mulching"},
			PreventiveMeasuresHindi: []string{"फसल चक्र", "संक्रमित अवशेष हटाएं", "मल्चिंग"},
		},
		{
			ID:               "nitrogen_deficiency",
			Name:             "Nitrogen Deficiency",
			NameHindi:        "नाइट्रोजन की कमी",
			Type:             entities.DiseaseNutrient,
			Severity:         entities.SeverityModerate,
			Description:      "Not contagious - environmental deficiency",
			DescriptionHindi: "संक्रामक नहीं - पर्यावरणीय कमी",
			AffectedCrops:    []string{"rice", "wheat", "maize", "tomato", "potato", "cotton", "sugarcane"},
			Symptoms: []entities.Symptom{
				{
					ID:               "yellowing_leaves",
					Name:             "Yellowing of older leaves",
					NameHindi:        "पुरानी पत्तियों का पीलापन",
					Description:      "Uniform yellowing starting from lower leaves",
					DescriptionHindi: "निचली पत्तियों से शुरू होने वाला समान पीलापन",
					AffectedPart:     entities.PartLeaf,
				},
				{
					ID:               "stunted_growth",
					Name:             "Stunted growth",
					NameHindi:        "बौना विकास",
					Description:      "Overall reduced plant growth",
					DescriptionHindi: "समग्र पौधे का विकास कम",
					AffectedPart:     entities.PartWhole,
				},
			},
			Causes: []string{"Insufficient nitrogen in soil", "Leaching due to heavy rain", "Poor organic matter"},
			OrganicTreatments: []entities.Treatment{
				{
					ID:               "vermicompost",
					Name:             "Vermicompost",
					NameHindi:        "वर्मीकम्पोस्ट",
					Type:             entities.TreatmentOrganic,
					Description:      "Apply vermicompost for slow nitrogen release",
					DescriptionHindi: "धीमी नाइट्रोजन रिलीज के लिए वर्मीकम्पोस्ट लगाएं",
					Method:           "Soil application",
					Frequency:        "Before sowing and as top dressing",
				},
			},
			ChemicalTreatments: []entities.Treatment{
				{
					ID:               "urea",
					Name:             "Urea",
					NameHindi:        "यूरिया",
					Type:             entities.TreatmentChemical,
					Description:      "Quick-release nitrogen fertilizer",
					DescriptionHindi: "त्वरित-रिलीज नाइट्रोजन उर्वरक",
					Method:           "Broadcasting or foliar spray",
					Frequency:        "Split application",
					Precautions:      []string{"Avoid over-application", "Apply before irrigation"},
				},
			},
			PreventiveMeasures:      []string{"Regular soil testing", "Organic matter addition", "Split fertilizer application"},
			PreventiveMeasuresHindi: []string{"नियमित मिट्टी परीक्षण", "जैविक पदार्थ मिलाना", "विभाजित उर्वरक प्रयोग"},
		},
		{
			ID:               "aphid_infestation",
			Name:             "Aphid Infestation",
			NameHindi:        "माहू प्रकोप",
			Type:             entities.DiseasePest,
			Severity:         entities.SeverityModerate,
			Description:      "Winged aphids fly to new plants, also spread by ants",
			DescriptionHindi: "पंखों वाले माहू नए पौधों पर उड़ते हैं, चींटियों द्वारा भी फैलते हैं",
			AffectedCrops:    []string{"mustard", "tomato", "brinjal", "cotton", "chickpea"},
			Symptoms: []entities.Symptom{
				{
					ID:               "curling_leaves",
					Name:             "Curled leaves",
					NameHindi:        "मुड़ी हुई पत्तियां",
					Description:      "Young leaves curl and distort",
					DescriptionHindi: "युवा पत्तियां मुड़ जाती हैं और विकृत हो जाती हैं",
					AffectedPart:     entities.PartLeaf,
				},
				{
					ID:               "sticky_honeydew",
					Name:             "Sticky honeydew",
					NameHindi:        "चिपचिपा मधु",
					Description:      "Shiny, sticky substance on leaves",
					DescriptionHindi: "पत्तियों पर चमकदार, चिपचिपा पदार्थ",
					AffectedPart:     entities.PartLeaf,
				},
			},
			Causes: []string{"Aphid insects", "Warm weather", "Lack of natural predators"},
			OrganicTreatments: []entities.Treatment{
				{
					ID:               "neem_oil_spray",
					Name:             "Neem oil spray",
					NameHindi:        "नीम तेल स्प्रे",
					Type:             entities.TreatmentOrganic,
					Description:      "Natural insecticide from neem",
					DescriptionHindi: "नीम से प्राकृतिक कीटनाशक",
					Method:           "Foliar spray",
					Frequency:        "Every 5-7 days until controlled",
				},
			},
			ChemicalTreatments: []entities.Treatment{
				{
					ID:               "imidacloprid",
					Name:             "Imidacloprid",
					NameHindi:        "इमिडाक्लोप्रिड",
					Type:             entities.TreatmentChemical,
					Description:      "Systemic insecticide for sucking pests",
					DescriptionHindi: "चूसने वाले कीटों के लिए प्रणालीगत कीटनाशक",
					Method:           "Foliar spray or soil drench",
					Frequency:        "Once or twice as needed",
					Precautions:      []string{"Harmful to bees", "Apply in evening", "Maintain safety period"},
				},
			},
			PreventiveMeasures:      []string{"Encourage beneficial insects", "Remove weeds", "Avoid excess nitrogen"},
			PreventiveMeasuresHindi: []string{"लाभकारी कीड़ों को प्रोत्साहित करें", "खरपतवार हटाएं", "अधिक नाइट्रोजन से बचें"},
		},
	}
}

// DefaultSymptoms returns the bundled observable symptom checklist the
// symptom picker is built from.
func DefaultSymptoms() []*entities.Symptom {
	return []*entities.Symptom{
		// Leaf symptoms
		{
			ID:               "yellowing_leaves",
			Name:             "Yellowing leaves",
			NameHindi:        "पत्तियों का पीला पड़ना",
			Description:      "Leaves turning yellow, may indicate nutrient deficiency or disease",
			DescriptionHindi: "पत्तियां पीली पड़ रही हैं, पोषक तत्वों की कमी या बीमारी का संकेत हो सकता है",
			AffectedPart:     entities.PartLeaf,
		},
		{
			ID:               "leaf_spots",
			Name:             "Leaf spots",
			NameHindi:        "पत्तियों पर धब्बे",
			Description:      "Spots on leaves of various colors and shapes",
			DescriptionHindi: "विभिन्न रंगों और आकारों के धब्बे पत्तियों पर",
			AffectedPart:     entities.PartLeaf,
		},
		{
			ID:               "wilting",
			Name:             "Wilting",
			NameHindi:        "मुरझाना",
			Description:      "Drooping or wilting of leaves and stems",
			DescriptionHindi: "पत्तियों और तनों का झुकना या मुरझाना",
			AffectedPart:     entities.PartWhole,
		},
		{
			ID:               "holes_in_leaves",
			Name:             "Holes in leaves",
			NameHindi:        "पत्तियों में छेद",
			Description:      "Small to large holes caused by insects",
			DescriptionHindi: "कीड़ों द्वारा बनाए गए छोटे से बड़े छेद",
			AffectedPart:     entities.PartLeaf,
		},
		{
			ID:               "powdery_coating",
			Name:             "Powdery coating",
			NameHindi:        "पाउडर जैसी परत",
			Description:      "White powdery substance on leaf surface",
			DescriptionHindi: "पत्ती की सतह पर सफेद पाउडर जैसा पदार्थ",
			AffectedPart:     entities.PartLeaf,
		},
		{
			ID:               "curling_leaves",
			Name:             "Curling leaves",
			NameHindi:        "पत्तियों का मुड़ना",
			Description:      "Leaves curling inward or outward",
			DescriptionHindi: "पत्तियां अंदर या बाहर की ओर मुड़ना",
			AffectedPart:     entities.PartLeaf,
		},

		// Stem symptoms
		{
			ID:               "stem_rot",
			Name:             "Stem rot",
			NameHindi:        "तना सड़न",
			Description:      "Soft, discolored rotting of stem",
			DescriptionHindi: "तने का नरम, रंग बदला हुआ सड़ना",
			AffectedPart:     entities.PartStem,
		},
		{
			ID:               "stem_lesions",
			Name:             "Stem lesions",
			NameHindi:        "तने पर घाव",
			Description:      "Wounds or cankers on stem",
			DescriptionHindi: "तने पर घाव या कैंकर",
			AffectedPart:     entities.PartStem,
		},

		// Fruit symptoms
		{
			ID:               "fruit_rot",
			Name:             "Fruit rot",
			NameHindi:        "फल सड़न",
			Description:      "Rotting or decay of fruits",
			DescriptionHindi: "फलों का सड़ना या क्षय",
			AffectedPart:     entities.PartFruit,
		},
		{
			ID:               "fruit_deformation",
			Name:             "Fruit deformation",
			NameHindi:        "फल विकृति",
			Description:      "Abnormal shape or growth of fruits",
			DescriptionHindi: "फलों का असामान्य आकार या वृद्धि",
			AffectedPart:     entities.PartFruit,
		},

		// Root symptoms
		{
			ID:               "root_rot",
			Name:             "Root rot",
			NameHindi:        "जड़ सड़न",
			Description:      "Dark, mushy roots with foul smell",
			DescriptionHindi: "गहरे रंग की, गीली जड़ें जिनमें बदबू आती है",
			AffectedPart:     entities.PartRoot,
		},

		// General symptoms
		{
			ID:               "stunted_growth",
			Name:             "Stunted growth",
			NameHindi:        "बौना विकास",
			Description:      "Plant smaller than normal",
			DescriptionHindi: "पौधा सामान्य से छोटा",
			AffectedPart:     entities.PartWhole,
		},
		{
			ID:               "drying_browning",
			Name:             "Drying/Browning",
			NameHindi:        "सूखना/भूरा होना",
			Description:      "Leaves or plant parts turning brown and dry",
			DescriptionHindi: "पत्तियां या पौधे के हिस्से भूरे और सूखे हो रहे हैं",
			AffectedPart:     entities.PartWhole,
		},
	}
}

func allRegions() []entities.Region {
	return []entities.Region{
		entities.RegionNorth,
		entities.RegionSouth,
		entities.RegionEast,
		entities.RegionWest,
		entities.RegionCentral,
		entities.RegionNorthEast,
	}
}
