package domain

type Champion struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement:false"` // e.g., 57
	Key  string `json:"key" gorm:"not null"`                      // e.g., "Maokai"
	Name string `json:"name" gorm:"not null"`                     // Display name
}

func (Champion) TableName() string { return "champions" }

// ChampionTag is a membership fact; the pair is its own identity.
type ChampionTag struct {
	ChampionID int64     `json:"championId" gorm:"primaryKey;autoIncrement:false"`
	Tag        string    `json:"tag" gorm:"primaryKey"`
	Champion   *Champion `json:"-" gorm:"foreignKey:ChampionID;constraint:OnDelete:CASCADE"`
}

func (ChampionTag) TableName() string { return "champion_tag" }

// ChampionAramMods holds the per-patch ARAM balance multipliers of a champion.
// A nil field means the upstream payload did not carry it.
type ChampionAramMods struct {
	ChampionID   int64     `json:"championId" gorm:"primaryKey;autoIncrement:false"`
	Patch        string    `json:"patch" gorm:"primaryKey"`
	AbilityHaste *float64  `json:"abilityHaste"`
	DmgDealt     *float64  `json:"dmgDealt"`
	DmgTaken     *float64  `json:"dmgTaken"`
	Healing      *float64  `json:"healing"`
	Shielding    *float64  `json:"shielding"`
	Tenacity     *float64  `json:"tenacity"`
	AttackSpeed  *float64  `json:"attackSpeed"`
	EnergyRegen  *float64  `json:"energyRegen"`
	Champion     *Champion `json:"-" gorm:"foreignKey:ChampionID;constraint:OnDelete:CASCADE"`
}

func (ChampionAramMods) TableName() string { return "champion_aram_mods" }

// AramModColumns lists every modifier column, in payload order.
var AramModColumns = []string{
	"ability_haste",
	"dmg_dealt",
	"dmg_taken",
	"healing",
	"shielding",
	"tenacity",
	"attack_speed",
	"energy_regen",
}

type ChampionSpellChange struct {
	ChampionID int64     `json:"championId" gorm:"primaryKey;autoIncrement:false"`
	Patch      string    `json:"patch" gorm:"primaryKey"`
	SpellKey   string    `json:"spellKey" gorm:"primaryKey"`
	Idx        int       `json:"idx" gorm:"primaryKey;autoIncrement:false"`
	ChangeText string    `json:"changeText" gorm:"not null"`
	Champion   *Champion `json:"-" gorm:"foreignKey:ChampionID;constraint:OnDelete:CASCADE"`
}

func (ChampionSpellChange) TableName() string { return "champion_spell_changes" }

type ChampionTagName string

const (
	TagFighter  ChampionTagName = "Fighter"
	TagTank     ChampionTagName = "Tank"
	TagMage     ChampionTagName = "Mage"
	TagAssassin ChampionTagName = "Assassin"
	TagSupport  ChampionTagName = "Support"
	TagMarksman ChampionTagName = "Marksman"
)
