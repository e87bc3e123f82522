package words

// Bundled word lists, en and de. Categories must exist in both languages
// so a lobby can switch language without invalidating its category setting.
var wordsByLanguage = map[string]map[string][]string{
	"en": {
		"animals": {
			"elephant", "giraffe", "penguin", "octopus", "kangaroo",
			"hedgehog", "flamingo", "crocodile", "owl", "dolphin",
			"squirrel", "peacock",
		},
		"food": {
			"pizza", "croissant", "sushi", "pancake", "watermelon",
			"spaghetti", "pretzel", "burrito", "ice cream", "popcorn",
			"doughnut", "avocado",
		},
		"objects": {
			"umbrella", "lighthouse", "typewriter", "hourglass", "anchor",
			"telescope", "wheelbarrow", "chandelier", "compass", "hammock",
			"accordion", "candle",
		},
		"places": {
			"beach", "castle", "library", "volcano", "circus",
			"airport", "submarine", "desert", "waterfall", "stadium",
			"graveyard", "treehouse",
		},
		"professions": {
			"firefighter", "astronaut", "magician", "plumber", "surgeon",
			"beekeeper", "detective", "conductor", "blacksmith", "lifeguard",
			"archaeologist", "barber",
		},
	},
	"de": {
		"animals": {
			"Elefant", "Giraffe", "Pinguin", "Tintenfisch", "Känguru",
			"Igel", "Flamingo", "Krokodil", "Eule", "Delfin",
			"Eichhörnchen", "Pfau",
		},
		"food": {
			"Pizza", "Croissant", "Sushi", "Pfannkuchen", "Wassermelone",
			"Spaghetti", "Brezel", "Burrito", "Eiscreme", "Popcorn",
			"Krapfen", "Avocado",
		},
		"objects": {
			"Regenschirm", "Leuchtturm", "Schreibmaschine", "Sanduhr", "Anker",
			"Teleskop", "Schubkarre", "Kronleuchter", "Kompass", "Hängematte",
			"Akkordeon", "Kerze",
		},
		"places": {
			"Strand", "Burg", "Bibliothek", "Vulkan", "Zirkus",
			"Flughafen", "U-Boot", "Wüste", "Wasserfall", "Stadion",
			"Friedhof", "Baumhaus",
		},
		"professions": {
			"Feuerwehrmann", "Astronaut", "Zauberer", "Klempner", "Chirurg",
			"Imker", "Detektiv", "Dirigent", "Schmied", "Rettungsschwimmer",
			"Archäologe", "Friseur",
		},
	},
}
