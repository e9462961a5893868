package preset

// Generic catalog based on the four Street Experiments typologies.
var streetExperiments = mustCatalog("street-experiments", []Preset{
	// Re-marking: surface changes only.
	{
		Key:            "路面藝術與彩繪 (Asphalt Art)",
		EnglishName:    "Asphalt Art Intervention",
		Typology:       TypologyReMarking,
		Description:    "Apply tactical urbanism 'Asphalt Art' to the road surface. Use bright, geometric colors to reclaim asphalt space for visuals without physical construction. Keep the road flat.",
		Keywords:       "colorful geometric asphalt art, street mural on ground, painted intersection, vibrant road patterns, tactical urbanism paint, artistic crosswalk, visual traffic calming",
		NegativePrompt: "raised structures, walls, construction site, messy graffiti, 3d structures on road",
	},
	{
		Key:            "路口安全改善 (Intersection Repair)",
		EnglishName:    "Intersection Safety Re-marking",
		Typology:       TypologyReMarking,
		Description:    "Redesign the intersection markings to prioritize pedestrian safety. Paint high-visibility crosswalks and 'neck-downs' (painted curb extensions) to shorten crossing distances visually.",
		Keywords:       "high-visibility crosswalks, painted curb extensions, neck-downs, traffic calming markings, white thermoplastic lines, safety zones, pedestrian priority markings",
		NegativePrompt: "confusing lines, faded paint, cars blocking crosswalk, dangerous intersection",
	},

	// Re-purposing parking.
	{
		Key:            "路邊休憩座 (Parklet)",
		EnglishName:    "Parklet Installation",
		Typology:       TypologyRepurposingParking,
		Description:    "Convert roadside parking spaces into a 'Parklet'. Install a wooden platform flush with the sidewalk, equipped with public seating and planters. Create a social spot.",
		Keywords:       "wooden parklet, curbside seating area, modular wood deck, outdoor cafe vibe, public benches, planters as barriers, people sitting, warm lighting, Schanigarten",
		NegativePrompt: "parked cars, metal fences, trash, heavy traffic right next to seats",
	},
	{
		Key:            "自行車停放區 (Bike Corral)",
		EnglishName:    "On-Street Bike Corral",
		Typology:       TypologyRepurposingParking,
		Description:    "Replace one car parking spot with a 'Bike Corral' that can hold 10+ bicycles. Install U-shaped bike racks surrounded by protective bollards or planters.",
		Keywords:       "bicycle corral, bike parking racks, row of bicycles, cargo bikes, protective bollards, street reclaiming, cyclist friendly, orderly bike parking",
		NegativePrompt: "cars parked in bike spots, broken bikes, messy pile of bikes",
	},

	// Re-purposing sections: partial geometry changes.
	{
		Key:            "路緣外推 (Curb Extension / Bulb-out)",
		EnglishName:    "Tactical Curb Extension",
		Typology:       TypologyRepurposingSection,
		Description:    "Physically widen the sidewalk at corners or mid-block using temporary materials. Use epoxy gravel, paint, or flexible posts to extend the pedestrian space into the road.",
		Keywords:       "curb extension, bulb-out, widened pedestrian corner, flexible posts, bollards, epoxy gravel surface, beige pavement, tactical widening, pedestrian safety",
		NegativePrompt: "narrow sidewalk, cars turning fast, asphalt dominance",
	},
	{
		Key:            "快閃廣場 (Pop-up Plaza)",
		EnglishName:    "Pop-up Plaza",
		Typology:       TypologyRepurposingSection,
		Description:    "Transform an underused slip lane or triangular intersection into a small pedestrian plaza. Fill the space with movable chairs, umbrellas, and potted trees.",
		Keywords:       "pedestrian plaza, colorful movable chairs, bistro tables, sun umbrellas, large potted trees, epoxy gravel flooring, gathering space, vibrant public life",
		NegativePrompt: "cars driving through, empty asphalt, dark shadows, loneliness",
	},

	// Re-purposing entire streets.
	{
		Key:            "臨時自行車專用道 (Pop-up Bike Lane)",
		EnglishName:    "Pop-up Bike Lane",
		Typology:       TypologyRepurposingStreet,
		Description:    "Convert a vehicle lane into a protected bike lane. Use traffic cones, planters, or armadillos (separators) to create a safe corridor for cyclists.",
		Keywords:       "pop-up bike lane, bright orange cones, planter protection, green bike path, cyclists riding, tactical bike infrastructure, wide cycling lane, separated from traffic",
		NegativePrompt: "motorcycles, cars in bike lane, dangerous traffic, faded markings",
	},
	{
		Key:            "遊戲街道 (Play Street)",
		EnglishName:    "Play Street",
		Typology:       TypologyRepurposingStreet,
		Description:    "Close the street to cars temporarily to create a 'Play Street'. The road is filled with children playing, chalk drawings on the ground, and play equipment.",
		Keywords:       "children playing on street, street chalk drawings, hopscotch, toys, road barriers closing street, happy kids, safe neighborhood, car-free zone, sunny day",
		NegativePrompt: "moving cars, danger, angry drivers, smog, dark colors",
	},
	{
		Key:            "通學巷 (School Street)",
		EnglishName:    "School Street",
		Typology:       TypologyRepurposingStreet,
		Description:    "Create a safe zone outside a school. Use barriers to block cars. Fill the street with parents and students walking. Add colorful 'School Zone' paintings on the ground.",
		Keywords:       "school street, parents and children walking, school zone road painting, safety barriers, no cars, morning sunlight, happy students, backpacks, safe route",
		NegativePrompt: "traffic jam, idling cars, dangerous crossing, grey asphalt",
	},
	{
		Key:            "行人徒步區 (Open Street / Pedestrianization)",
		EnglishName:    "Full Pedestrianization",
		Typology:       TypologyRepurposingStreet,
		Description:    "Permanently or temporarily remove all cars. The entire street width is for people. Add market stalls, benches, and trees in the middle of the road.",
		Keywords:       "pedestrian only street, market stalls, walking people, street musicians, open air, stone pavement, trees in middle of road, vibrant city life, no vehicles",
		NegativePrompt: "cars, buses, trucks, traffic lights, exhaust fumes",
	},
})

func StreetExperiments() *Catalog {
	return streetExperiments
}
