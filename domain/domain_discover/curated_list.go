package domain_discover

// DefaultCuratedList is the shipped curation configuration: a fixed, ordered
// editorial pick list matched against catalog titles at ranking time. It is
// versioned with the binary and not editable at runtime.
var DefaultCuratedList = []CuratedEntry{
	{Label: "Hades II", Match: []string{"hades ii", "hades 2"}},
	{Label: "Baldur's Gate 3", Match: []string{"baldur's gate 3", "baldurs gate 3"}},
	{Label: "Elden Ring", Match: []string{"elden ring"}},
	{Label: "The Witcher 3: Wild Hunt", Match: []string{"witcher 3"}},
	{Label: "Hollow Knight: Silksong", Match: []string{"silksong"}},
	{Label: "Hollow Knight", Match: []string{"hollow knight"}},
	{Label: "Stardew Valley", Match: []string{"stardew"}},
	{Label: "Hades", Match: []string{"hades"}},
	{Label: "Celeste", Match: []string{"celeste"}},
	{Label: "Disco Elysium", Match: []string{"disco elysium"}},
	{Label: "Outer Wilds", Match: []string{"outer wilds"}},
	{Label: "Portal 2", Match: []string{"portal 2"}},
	{Label: "Half-Life: Alyx", Match: []string{"half-life: alyx", "half life alyx"}},
	{Label: "Slay the Spire", Match: []string{"slay the spire"}},
	{Label: "Balatro", Match: []string{"balatro"}},
	{Label: "Factorio", Match: []string{"factorio"}},
	{Label: "RimWorld", Match: []string{"rimworld"}},
	{Label: "Terraria", Match: []string{"terraria"}},
	{Label: "Sekiro: Shadows Die Twice", Match: []string{"sekiro"}},
	{Label: "God of War Ragnarök", Match: []string{"god of war ragnarok"}},
	{Label: "Red Dead Redemption 2", Match: []string{"red dead redemption 2"}},
	{Label: "Cyberpunk 2077", Match: []string{"cyberpunk 2077"}},
	{Label: "DOOM Eternal", Match: []string{"doom eternal"}},
	{Label: "Subnautica", Match: []string{"subnautica"}},
	{Label: "Dead Cells", Match: []string{"dead cells"}},
	{Label: "Vampire Survivors", Match: []string{"vampire survivors"}},
	{Label: "Monster Hunter: World", Match: []string{"monster hunter: world", "monster hunter world"}},
	{Label: "NieR:Automata", Match: []string{"nier"}},
	{Label: "Counter-Strike 2", Match: []string{"counter-strike 2", "counter strike 2"}},
	{Label: "Dota 2", Match: []string{"dota 2"}},
}
