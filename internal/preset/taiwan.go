package preset

// Locale catalog built on the Taiwan human-oriented transport planning and design manual.
var taiwan = mustCatalog("taiwan", []Preset{
	{
		Key:             "標線型人行道 (Green Sidewalk)",
		EnglishName:     "Green Marked Sidewalk",
		Typology:        TypologyReMarking,
		Description:     "Install a 'Green Marked Sidewalk' (commonly seen in Taiwan) along the roadside. Paint a vibrant green walking zone separated by white lines. Ensure continuity.",
		Keywords:        "green painted sidewalk, high visibility green pavement, white edge lines, pedestrian walking zone on asphalt, tactical urbanism, Taiwan street style, safety separation",
		NegativePrompt:  "raised curb, physical barrier, grey asphalt only, cars parked on green paint",
		ManualReference: "手冊 3.3.1 標線型人行道：供行人通行之空間，以綠色鋪面為主。",
	},
	{
		Key:             "行穿線退縮與庇護島 (Z-Crosswalk)",
		EnglishName:     "Setback Crosswalk with Refuge Island",
		Typology:        TypologyIntersectionSafety,
		Description:     "Redesign the intersection by setting back the zebra crossing (moving it away from the corner). Install a concrete 'Pedestrian Refuge Island' in the middle of the road.",
		Keywords:        "setback crosswalk, pedestrian refuge island, concrete median island, zebra crossing moved back, Z-shaped crossing, safety bollards, universal design, accessible curb ramp",
		NegativePrompt:  "crosswalk right at corner, cars blocking path, dangerous intersection, no island",
		ManualReference: "手冊 4.2.2 行人穿越道退縮 / 4.2.3 行人庇護島：縮短穿越距離，避免轉彎車輛視線死角。",
	},
	{
		Key:             "彩色鋪面路口 (Colored Intersection)",
		EnglishName:     "Colored Intersection",
		Typology:        TypologyTrafficCalming,
		Description:     "Apply colored anti-skid coating to the entire intersection area to alert drivers. Use a distinct color (like brick red or yellow) to indicate a conflict zone.",
		Keywords:        "colored asphalt intersection, brick red road surface, anti-skid pavement, visual warning zone, traffic calming, high contrast road markings",
		NegativePrompt:  "wet slippery road, standard grey asphalt, construction mess",
		ManualReference: "手冊 5.2 鋪面色彩：利用色彩區隔空間，提高駕駛警覺。",
	},
	{
		Key:             "路口人行道外推 (Curb Extension)",
		EnglishName:     "Curb Extension (Bulb-out)",
		Typology:        TypologyRepurposingSection,
		Description:     "Widen the sidewalk at the intersection corners (Bulb-out). This shortens the crossing distance and prevents illegal corner parking.",
		Keywords:        "curb extension, bulb-out, widened sidewalk corner, concrete curb, bollards, prevents corner parking, pedestrian safety, shorter crosswalk",
		NegativePrompt:  "cars parking at corner, wide turning radius for cars, narrow sidewalk",
		ManualReference: "手冊 4.2.1 路口人行道外推：縮短穿越距離，增加駕駛視距，防止違停。",
	},
	{
		Key:             "機車彎與設施帶 (Motorcycle Bay & Furniture Zone)",
		EnglishName:     "Furniture Zone & Motorcycle Parking",
		Typology:        TypologyRepurposingParking,
		Description:     "Create a dedicated 'Furniture Zone' between the sidewalk and road. Place street trees, utility boxes, and indented motorcycle parking bays (Motorcycle Bends) in this zone, keeping the walking path clear.",
		Keywords:        "sidewalk furniture zone, indented motorcycle parking bay, street trees aligned, utility boxes organized, clear pedestrian path, orderly motorcycle parking, Taiwan streetscape",
		NegativePrompt:  "motorcycles blocking sidewalk, clutter, messy parking, walking obstruction",
		ManualReference: "手冊 3.2.3 公共設施帶 / 機車彎：將機車退出人行道，收納於設施帶間的停車彎。",
	},
	{
		Key:             "騎樓整平與延伸 (Arcade Leveling)",
		EnglishName:     "Arcade Leveling & Extension",
		Typology:        TypologyAccessibility,
		Description:     "Ensure the 'Veranda/Arcade' (covered walkway under buildings) is perfectly level and barrier-free. Extend the paving material to the sidewalk for a seamless wide walking area.",
		Keywords:        "covered arcade walkway, leveled flooring, barrier-free design, seamless connection to sidewalk, tile pavement, bright lighting, accessible for wheelchair, Taiwan shopfront",
		NegativePrompt:  "steps, height difference, motorcycles in arcade, blocked path, clutter",
		ManualReference: "手冊 3.4 騎樓：騎樓地坪應平整，並與人行道順平。",
	},
	{
		Key:             "通學巷 (School Zone)",
		EnglishName:     "School Zone Traffic Calming",
		Typology:        TypologyRepurposingStreet,
		Description:     "Design a 'School Zone' with traffic calming measures. Use zig-zag markings, speed limit '30' painted on the road, and distinct colored pavement.",
		Keywords:        "school zone, speed limit 30 painting, zig-zag road markings, colored pavement, safety barriers, students walking, traffic calming, safe route to school",
		NegativePrompt:  "speeding cars, highway, danger, dark alley",
		ManualReference: "手冊 6.2 通學巷：設置速限30、彩色鋪面與減速設施。",
	},
	{
		Key:             "高原式路口 (Raised Intersection)",
		EnglishName:     "Raised Intersection",
		Typology:        TypologyTrafficCalming,
		Description:     "Raise the entire intersection to the height of the sidewalk. This forces cars to slow down and creates a flat crossing for pedestrians.",
		Keywords:        "raised intersection, table-top crossing, speed table, flush curb, paver stones on road, traffic calming, slow cars, pedestrian priority",
		NegativePrompt:  "steep ramps, standard asphalt road, fast cars",
		ManualReference: "手冊 5.3 高原式路口：路口抬高與人行道齊平，強迫車輛減速。",
	},
})

func Taiwan() *Catalog {
	return taiwan
}
