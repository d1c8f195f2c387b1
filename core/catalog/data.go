package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var usedGames = []Game{
	{
		ID:          "u-001",
		Title:       "The Last of Us Part II",
		Platform:    "PS4",
		Price:       price("19.99"),
		Condition:   "Very Good",
		Description: "Five years after their dangerous journey across the post-pandemic United States, Ellie and Joel have settled down in Jackson, Wyoming.",
		Cover:       LocalAsset{Name: "tlou2.jpg"},
	},
	{
		ID:          "u-002",
		Title:       "Red Dead Redemption 2",
		Platform:    "Xbox One",
		Price:       price("24.99"),
		Condition:   "Good",
		Description: "America, 1899. Arthur Morgan and the Van der Linde gang are outlaws on the run.",
		Cover:       LocalAsset{Name: "rdr2.jpg"},
	},
	{
		ID:          "u-003",
		Title:       "The Legend of Zelda: Breath of the Wild",
		Platform:    "Nintendo Switch",
		Price:       price("39.99"),
		Condition:   "Like New",
		Description: "Step into a world of discovery, exploration and adventure.",
		Cover:       LocalAsset{Name: "botw.jpg"},
	},
	{
		ID:          "u-004",
		Title:       "God of War",
		Platform:    "PS4",
		Price:       price("14.99"),
		Condition:   "Acceptable",
		Description: "Kratos lives as a man in the realm of Norse gods and monsters. Disc has light scratches.",
		Cover:       RemoteURL{URL: "https://images.passandplay.example/covers/gow.jpg"},
	},
	{
		ID:          "u-005",
		Title:       "Halo Infinite",
		Platform:    "Xbox Series X",
		Price:       price("22.50"),
		Condition:   "Very Good",
		Description: "Master Chief returns in the most expansive Halo campaign yet.",
		Cover:       RemoteURL{URL: "https://images.passandplay.example/covers/halo-infinite.jpg"},
	},
}

var newGames = []Game{
	{
		ID:          "n-001",
		Title:       "Elden Ring",
		Platform:    "PC",
		Price:       price("59.99"),
		Type:        "Steam Key",
		Description: "Rise, Tarnished, and be guided by grace to brandish the power of the Elden Ring.",
		Cover:       RemoteURL{URL: "https://images.passandplay.example/covers/elden-ring.jpg"},
	},
	{
		ID:          "n-002",
		Title:       "Cyberpunk 2077",
		Platform:    "PC",
		Price:       price("29.99"),
		Type:        "GOG Key",
		Description: "An open-world action-adventure story set in Night City.",
		Cover:       RemoteURL{URL: "https://images.passandplay.example/covers/cyberpunk-2077.jpg"},
	},
	{
		ID:          "n-003",
		Title:       "Forza Horizon 5",
		Platform:    "Xbox Series X",
		Price:       price("49.99"),
		Type:        "Xbox Digital Code",
		Description: "Explore the vibrant open world landscapes of Mexico.",
		Cover:       RemoteURL{URL: "https://images.passandplay.example/covers/fh5.jpg"},
	},
	{
		ID:          "n-004",
		Title:       "Hades",
		Platform:    "Nintendo Switch",
		Price:       price("24.99"),
		Type:        "eShop Code",
		Description: "Defy the god of the dead as you hack and slash out of the Underworld.",
		Cover:       LocalAsset{Name: "hades.jpg"},
	},
	{
		ID:          "n-005",
		Title:       "Stardew Valley",
		Platform:    "PC",
		Price:       price("14.99"),
		Type:        "Steam Key",
		Description: "You've inherited your grandfather's old farm plot in Stardew Valley.",
		Cover:       LocalAsset{Name: "stardew.jpg"},
	},
}
