package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslations(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })

	SetLang("pt_BR")
	assert.Equal(t, "pt", GetLang())
	assert.Equal(t, "Adicionar", T("Add"))
	assert.Equal(t, "Construtor", T("Builder"))
	assert.Equal(t, "Usar Poção do Construtor (10x velocidade)",
		Tf("PotionToggle", "Use {{.Potion}} ({{.Multiplier}}x speed)",
			map[string]any{"Potion": T("Builder Potion"), "Multiplier": 10}))

	SetLang("es-MX")
	assert.Equal(t, "es", GetLang())
	assert.Equal(t, "Añadir", T("Add"))
}

func TestUntranslatedFallsBack(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })

	SetLang("ja")
	assert.Equal(t, "en", GetLang())
	assert.Equal(t, "Add", T("Add"))
	assert.Equal(t, "Use Builder Potion (10x speed)",
		Tf("PotionToggle", "Use {{.Potion}} ({{.Multiplier}}x speed)",
			map[string]any{"Potion": "Builder Potion", "Multiplier": 10}))

	SetLang("ru")
	assert.Equal(t, "Some unknown label", T("Some unknown label"))
}

func TestInitPrefersEnv(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })

	t.Setenv(EnvLang, "ru")
	Init("pt")
	assert.Equal(t, "ru", GetLang())

	t.Setenv(EnvLang, "")
	Init("es")
	assert.Equal(t, "es", GetLang())
}
