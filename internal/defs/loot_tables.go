package defs

// LootEntry представляет одну запись в таблице выпадения.
// Weight задаёт относительный шанс выпадения.
type LootEntry struct {
	Type   PowerUpType `json:"type"`
	Weight float64     `json:"weight"`
}

// LootTable определяет список возможных бонусов для тира оружия.
// Порядок записей важен: бросок проходит таблицу по накопленным весам.
type LootTable struct {
	WeaponTier int         `json:"weapon_tier"`
	Entries    []LootEntry `json:"entries"`
}

// DefaultLootTables: на низких тирах чаще выпадает оружие.
func DefaultLootTables() []LootTable {
	return []LootTable{
		{WeaponTier: 0, Entries: []LootEntry{
			{PowerUpWeapon, 0.70},
			{PowerUpAlly, 0.07},
			{PowerUpBoom, 0.07},
			{PowerUpHealth, 0.07},
			{PowerUpShield, 0.09},
		}},
		{WeaponTier: 1, Entries: []LootEntry{
			{PowerUpWeapon, 0.40},
			{PowerUpAlly, 0.15},
			{PowerUpBoom, 0.15},
			{PowerUpHealth, 0.15},
			{PowerUpShield, 0.15},
		}},
		{WeaponTier: 2, Entries: []LootEntry{
			{PowerUpAlly, 0.25},
			{PowerUpBoom, 0.20},
			{PowerUpHealth, 0.20},
			{PowerUpShield, 0.20},
			{PowerUpWeapon, 0.15},
		}},
	}
}

// TableForTier возвращает таблицу для тира; для неизвестных тиров берётся последняя.
func TableForTier(tables []LootTable, tier int) []LootEntry {
	for _, t := range tables {
		if t.WeaponTier == tier {
			return t.Entries
		}
	}
	if len(tables) == 0 {
		return nil
	}
	return tables[len(tables)-1].Entries
}
