package quiz

// Option is a selectable answer. Value is what gets stored under the
// owning question's key.
type Option struct {
	Label string
	Value string
}

// Question is one panel of the quiz. A question without a Key is shown
// but its options are inert.
type Question struct {
	Key     string
	Prompt  string
	Options []Option
}

// DefaultQuestions returns the fixed question sequence in the order it is asked.
func DefaultQuestions() []Question {
	return []Question{
		{
			Key:    KeyProductType,
			Prompt: "¿Qué se te antoja hoy?",
			Options: []Option{
				{Label: "Una paleta", Value: "paleta"},
				{Label: "Un helado o nieve", Value: "helado"},
				{Label: "Un agua fresca", Value: "agua"},
				{Label: "Una especialidad de la casa", Value: "especialidad"},
			},
		},
		{
			Key:    KeyCraving,
			Prompt: "¿Qué tipo de antojo tienes?",
			Options: []Option{
				{Label: "Dulce", Value: "dulce"},
				{Label: "Salado", Value: "salado"},
				{Label: "Ácido", Value: "acido"},
				{Label: "Picante", Value: "picante"},
			},
		},
		{
			Key:    KeyBase,
			Prompt: "¿Con qué base lo prefieres?",
			Options: []Option{
				{Label: "De agua", Value: "agua"},
				{Label: "De leche", Value: "leche"},
				{Label: "Con crema", Value: "crema"},
				{Label: "Botana", Value: "botana"},
			},
		},
		{
			Key:    KeyFlavor,
			Prompt: "¿Qué sabor te llama más?",
			Options: []Option{
				{Label: "Fruta", Value: "fruta"},
				{Label: "Chocolate", Value: "chocolate"},
				{Label: "Vainilla", Value: "vainilla"},
				{Label: "Chile y limón", Value: "chile"},
			},
		},
	}
}
