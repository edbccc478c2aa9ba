package conversion

// Ability is a source-system ability score.
type Ability string

const (
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityStrength     Ability = "strength"
	AbilityWisdom       Ability = "wisdom"
	AbilityIntelligence Ability = "intelligence"
	AbilityBardicVoice  Ability = "bardic_voice"
	AbilityAppearance   Ability = "appearance"
	AbilityFortitude    Ability = "fortitude"
	AbilityDiscipline   Ability = "discipline"
)

// sourceAbilities is the fixed input order. Every ability counts toward the
// cost basis; discipline has no Harnmaster counterpart.
var sourceAbilities = [...]Ability{
	AbilityDexterity,
	AbilityConstitution,
	AbilityStrength,
	AbilityWisdom,
	AbilityIntelligence,
	AbilityBardicVoice,
	AbilityAppearance,
	AbilityFortitude,
	AbilityDiscipline,
}

// SourceAbilities returns the nine source abilities in input order.
func SourceAbilities() []Ability {
	out := make([]Ability, len(sourceAbilities))
	copy(out, sourceAbilities[:])
	return out
}

// Characteristic is a Harnmaster characteristic produced by the conversion.
type Characteristic string

const (
	CharacteristicAgility      Characteristic = "agility"
	CharacteristicStamina      Characteristic = "stamina"
	CharacteristicStrength     Characteristic = "strength"
	CharacteristicAura         Characteristic = "aura"
	CharacteristicIntelligence Characteristic = "intelligence"
	CharacteristicVoice        Characteristic = "voice"
	CharacteristicComeliness   Characteristic = "comeliness"
	CharacteristicWill         Characteristic = "will"
)

// CharacteristicCount is the number of converted characteristics.
const CharacteristicCount = 8

// Mapping pairs a Harnmaster characteristic with the ability it comes from.
type Mapping struct {
	Characteristic Characteristic
	Source         Ability
}

// conversionTable fixes both the source of each characteristic and the
// output order.
var conversionTable = [CharacteristicCount]Mapping{
	{CharacteristicAgility, AbilityDexterity},
	{CharacteristicStamina, AbilityConstitution},
	{CharacteristicStrength, AbilityStrength},
	{CharacteristicAura, AbilityWisdom},
	{CharacteristicIntelligence, AbilityIntelligence},
	{CharacteristicVoice, AbilityBardicVoice},
	{CharacteristicComeliness, AbilityAppearance},
	{CharacteristicWill, AbilityFortitude},
}

// ConversionTable returns the characteristic mappings in output order.
func ConversionTable() []Mapping {
	out := make([]Mapping, len(conversionTable))
	copy(out, conversionTable[:])
	return out
}

// Characteristics returns the converted characteristics in output order.
func Characteristics() []Characteristic {
	out := make([]Characteristic, len(conversionTable))
	for i, m := range conversionTable {
		out[i] = m.Characteristic
	}
	return out
}

func characteristicIndex(c Characteristic) (int, bool) {
	for i, m := range conversionTable {
		if m.Characteristic == c {
			return i, true
		}
	}
	return 0, false
}
