package quiz

import "github.com/ecoamazonia/guardioes/internal/i18n"

var fallbackQuestions = map[i18n.Language][]Question{
	i18n.Portuguese: {
		{
			Text:        "Qual é a principal causa do desmatamento na Amazônia?",
			Options:     []string{"Expansão agrícola e pecuária", "Construção de cidades", "Turismo ecológico", "Extrativismo de látex"},
			Answer:      "Expansão agrícola e pecuária",
			Explanation: "A maior parte do desmatamento na Amazônia é causada pela conversão da floresta em pastagens para gado e plantações, como a soja.",
		},
		{
			Text:        "O que são os 'rios voadores'?",
			Options:     []string{"Um tipo de transporte aéreo local", "A umidade da floresta levada pelo vento para outras regiões", "Lendas indígenas sobre rios que flutuam", "Nuvens de poluição de queimadas"},
			Answer:      "A umidade da floresta levada pelo vento para outras regiões",
			Explanation: "A floresta libera enormes quantidades de vapor d'água que viajam pela atmosfera e trazem chuva para grande parte da América do Sul.",
		},
		{
			Text:        "Qual fonte de energia é renovável?",
			Options:     []string{"Carvão mineral", "Energia solar", "Óleo diesel", "Gás natural"},
			Answer:      "Energia solar",
			Explanation: "A luz do Sol não se esgota e gerar eletricidade com ela quase não emite gases de efeito estufa.",
		},
		{
			Text:        "Qual atitude é um exemplo de consumo consciente?",
			Options:     []string{"Comprar mais do que precisa", "Reutilizar e reciclar embalagens", "Usar sacolas plásticas descartáveis", "Trocar de celular todo ano"},
			Answer:      "Reutilizar e reciclar embalagens",
			Explanation: "Reutilizar e reciclar reduz o lixo e a extração de novos recursos da natureza.",
		},
		{
			Text:        "Por que as queimadas na Amazônia agravam a crise climática?",
			Options:     []string{"Liberam gás carbônico na atmosfera", "Aumentam a quantidade de chuva", "Deixam o solo mais fértil para sempre", "Atraem mais animais para a floresta"},
			Answer:      "Liberam gás carbônico na atmosfera",
			Explanation: "As árvores guardam carbono. Quando queimam, esse carbono vai para o ar como CO₂ e intensifica o aquecimento global.",
		},
	},
	i18n.English: {
		{
			Text:        "What is the main cause of deforestation in the Amazon?",
			Options:     []string{"Farming and cattle ranching", "Building cities", "Ecotourism", "Rubber tapping"},
			Answer:      "Farming and cattle ranching",
			Explanation: "Most deforestation in the Amazon comes from turning forest into cattle pasture and crops such as soy.",
		},
		{
			Text:        "What are the 'flying rivers'?",
			Options:     []string{"A kind of local air transport", "Forest moisture carried by the wind to other regions", "Indigenous legends about floating rivers", "Smoke clouds from fires"},
			Answer:      "Forest moisture carried by the wind to other regions",
			Explanation: "The forest releases huge amounts of water vapor that travel through the atmosphere and bring rain to much of South America.",
		},
		{
			Text:        "Which energy source is renewable?",
			Options:     []string{"Coal", "Solar power", "Diesel oil", "Natural gas"},
			Answer:      "Solar power",
			Explanation: "Sunlight does not run out, and turning it into electricity releases almost no greenhouse gases.",
		},
		{
			Text:        "Which habit is an example of conscious consumption?",
			Options:     []string{"Buying more than you need", "Reusing and recycling packaging", "Using disposable plastic bags", "Replacing your phone every year"},
			Answer:      "Reusing and recycling packaging",
			Explanation: "Reusing and recycling cuts down on waste and on taking new resources from nature.",
		},
		{
			Text:        "Why do fires in the Amazon make the climate crisis worse?",
			Options:     []string{"They release carbon dioxide into the air", "They increase rainfall", "They make the soil fertile forever", "They attract more animals to the forest"},
			Answer:      "They release carbon dioxide into the air",
			Explanation: "Trees store carbon. When they burn, that carbon goes into the air as CO₂ and speeds up global warming.",
		},
	},
	i18n.Spanish: {
		{
			Text:        "¿Cuál es la principal causa de la deforestación en la Amazonía?",
			Options:     []string{"La expansión agrícola y ganadera", "La construcción de ciudades", "El turismo ecológico", "La extracción de látex"},
			Answer:      "La expansión agrícola y ganadera",
			Explanation: "La mayor parte de la deforestación en la Amazonía se debe a convertir el bosque en pastos para ganado y cultivos como la soja.",
		},
		{
			Text:        "¿Qué son los 'ríos voladores'?",
			Options:     []string{"Un tipo de transporte aéreo local", "La humedad del bosque llevada por el viento a otras regiones", "Leyendas indígenas sobre ríos que flotan", "Nubes de humo de los incendios"},
			Answer:      "La humedad del bosque llevada por el viento a otras regiones",
			Explanation: "El bosque libera enormes cantidades de vapor de agua que viajan por la atmósfera y llevan lluvia a gran parte de Sudamérica.",
		},
		{
			Text:        "¿Qué fuente de energía es renovable?",
			Options:     []string{"Carbón mineral", "Energía solar", "Gasóleo", "Gas natural"},
			Answer:      "Energía solar",
			Explanation: "La luz del Sol no se agota y generar electricidad con ella casi no emite gases de efecto invernadero.",
		},
		{
			Text:        "¿Qué hábito es un ejemplo de consumo consciente?",
			Options:     []string{"Comprar más de lo que necesitas", "Reutilizar y reciclar envases", "Usar bolsas de plástico desechables", "Cambiar de celular cada año"},
			Answer:      "Reutilizar y reciclar envases",
			Explanation: "Reutilizar y reciclar reduce la basura y la extracción de nuevos recursos de la naturaleza.",
		},
		{
			Text:        "¿Por qué los incendios en la Amazonía agravan la crisis climática?",
			Options:     []string{"Liberan dióxido de carbono al aire", "Aumentan las lluvias", "Dejan el suelo fértil para siempre", "Atraen más animales al bosque"},
			Answer:      "Liberan dióxido de carbono al aire",
			Explanation: "Los árboles almacenan carbono. Al quemarse, ese carbono pasa al aire como CO₂ y acelera el calentamiento global.",
		},
	},
}

var fallbackRiverQuestions = map[i18n.Language][]RiverQuestion{
	i18n.Portuguese: {
		{
			Text: "O que fazer com o lixo durante um passeio de barco?",
			Options: []RiverOption{
				{Text: "Jogar no rio, a correnteza leva", Correct: false},
				{Text: "Guardar e descartar em terra", Correct: true},
				{Text: "Enterrar na margem", Correct: false},
			},
			Feedback: "Isso mesmo! Levar o lixo de volta protege os peixes e os botos.",
		},
		{
			Text: "Por que as matas ciliares são importantes para os rios?",
			Options: []RiverOption{
				{Text: "Protegem as margens contra a erosão", Correct: true},
				{Text: "Deixam a água mais quente", Correct: false},
				{Text: "Impedem os peixes de nadar", Correct: false},
			},
			Feedback: "Muito bem! As raízes seguram o solo e mantêm a água limpa.",
		},
		{
			Text: "O que ameaça a vida aquática nos rios da Amazônia?",
			Options: []RiverOption{
				{Text: "Plantar árvores nas margens", Correct: false},
				{Text: "O mercúrio do garimpo ilegal", Correct: true},
				{Text: "A chuva", Correct: false},
			},
			Feedback: "Correto! O mercúrio contamina peixes e pessoas que dependem do rio.",
		},
	},
	i18n.English: {
		{
			Text: "What should you do with trash on a boat trip?",
			Options: []RiverOption{
				{Text: "Throw it in the river, the current takes it away", Correct: false},
				{Text: "Keep it and dispose of it on land", Correct: true},
				{Text: "Bury it on the riverbank", Correct: false},
			},
			Feedback: "That's right! Taking trash back protects the fish and the river dolphins.",
		},
		{
			Text: "Why are riverside forests important for rivers?",
			Options: []RiverOption{
				{Text: "They protect the banks from erosion", Correct: true},
				{Text: "They make the water warmer", Correct: false},
				{Text: "They stop fish from swimming", Correct: false},
			},
			Feedback: "Well done! Roots hold the soil and keep the water clean.",
		},
		{
			Text: "What threatens aquatic life in Amazon rivers?",
			Options: []RiverOption{
				{Text: "Planting trees on the banks", Correct: false},
				{Text: "Mercury from illegal gold mining", Correct: true},
				{Text: "Rain", Correct: false},
			},
			Feedback: "Correct! Mercury poisons fish and the people who depend on the river.",
		},
	},
	i18n.Spanish: {
		{
			Text: "¿Qué hacer con la basura durante un paseo en barco?",
			Options: []RiverOption{
				{Text: "Tirarla al río, la corriente se la lleva", Correct: false},
				{Text: "Guardarla y desecharla en tierra", Correct: true},
				{Text: "Enterrarla en la orilla", Correct: false},
			},
			Feedback: "¡Así es! Llevar la basura de vuelta protege a los peces y a los delfines rosados.",
		},
		{
			Text: "¿Por qué los bosques de ribera son importantes para los ríos?",
			Options: []RiverOption{
				{Text: "Protegen las orillas de la erosión", Correct: true},
				{Text: "Calientan el agua", Correct: false},
				{Text: "Impiden nadar a los peces", Correct: false},
			},
			Feedback: "¡Muy bien! Las raíces sujetan el suelo y mantienen el agua limpia.",
		},
		{
			Text: "¿Qué amenaza la vida acuática en los ríos de la Amazonía?",
			Options: []RiverOption{
				{Text: "Plantar árboles en las orillas", Correct: false},
				{Text: "El mercurio de la minería ilegal", Correct: true},
				{Text: "La lluvia", Correct: false},
			},
			Feedback: "¡Correcto! El mercurio contamina a los peces y a las personas que dependen del río.",
		},
	},
}

// FallbackQuestions returns the built-in questions for lang, falling back
// to Portuguese. The slice is a copy.
func FallbackQuestions(lang i18n.Language) []Question {
	qs, ok := fallbackQuestions[lang]
	if !ok {
		qs = fallbackQuestions[i18n.Default]
	}
	return append([]Question(nil), qs...)
}

// FallbackRiverQuestion returns the n-th built-in river question for lang,
// cycling through the set.
func FallbackRiverQuestion(lang i18n.Language, n int) RiverQuestion {
	qs, ok := fallbackRiverQuestions[lang]
	if !ok {
		qs = fallbackRiverQuestions[i18n.Default]
	}
	if n < 0 {
		n = -n
	}
	return qs[n%len(qs)]
}
