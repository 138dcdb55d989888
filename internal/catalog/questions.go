package catalog

import "climatewise/internal/model"

// defaultQuestionSetIDs is the fixed fallback set served when personalized
// selection matches nothing. Broadly applicable questions only.
var defaultQuestionSetIDs = []string{
	"q_home_energy",
	"q_recycling_habits",
	"q_water_usage",
	"q_food_choices",
	"q_carbon_literacy",
	"q_single_use_plastic",
	"q_climate_news",
	"q_energy_sources",
	"q_transport_commute",
	"q_consumption_habits",
}

func allCategories() []model.Category {
	return []model.Category{
		model.CategoryStudent,
		model.CategoryEmployee,
		model.CategoryCompanyOwner,
		model.CategoryGovernment,
	}
}

// frequencyOptions is the standard always/often/rarely/never scale.
func frequencyOptions() []model.QuestionOption {
	return []model.QuestionOption{
		{Value: "always", Label: model.LocalizedText{EN: "Always", PT: "Sempre"}, Points: 6},
		{Value: "often", Label: model.LocalizedText{EN: "Often", PT: "Frequentemente"}, Points: 4},
		{Value: "rarely", Label: model.LocalizedText{EN: "Rarely", PT: "Raramente"}, Points: 2},
		{Value: "never", Label: model.LocalizedText{EN: "Never", PT: "Nunca"}, Points: 0},
	}
}

// DefaultQuestions returns the built-in question catalog.
func DefaultQuestions() []model.QuestionDefinition {
	return []model.QuestionDefinition{
		{
			ID:         "q_home_energy",
			Categories: allCategories(),
			Difficulty: model.DifficultyBeginner,
			Priority:   10,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you turn off lights and unplug electronics when not in use?",
				PT: "Você apaga as luzes e desconecta eletrônicos quando não estão em uso?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Standby power can account for up to 10% of household electricity use.",
				PT: "O consumo em standby pode representar até 10% do uso de eletricidade doméstica.",
			},
		},
		{
			ID:         "q_recycling_habits",
			Categories: allCategories(),
			Interests:  []string{"recycling"},
			Difficulty: model.DifficultyBeginner,
			Priority:   9,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you separate recyclable waste at home?",
				PT: "Você separa o lixo reciclável em casa?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Brazil recycles only about 4% of its municipal solid waste.",
				PT: "O Brasil recicla apenas cerca de 4% dos seus resíduos sólidos urbanos.",
			},
		},
		{
			ID:         "q_transport_commute",
			Categories: []model.Category{model.CategoryStudent, model.CategoryEmployee},
			Interests:  []string{"sustainable_transport"},
			Difficulty: model.DifficultyBeginner,
			Priority:   9,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "How do you usually commute to school or work?",
				PT: "Como você costuma ir para a escola ou o trabalho?",
			},
			Options: []model.QuestionOption{
				{Value: "walk_bike", Label: model.LocalizedText{EN: "Walking or cycling", PT: "A pé ou de bicicleta"}, Points: 6},
				{Value: "public_transit", Label: model.LocalizedText{EN: "Public transport", PT: "Transporte público"}, Points: 4},
				{Value: "carpool", Label: model.LocalizedText{EN: "Carpool", PT: "Carona compartilhada"}, Points: 2},
				{Value: "car_alone", Label: model.LocalizedText{EN: "Driving alone", PT: "Carro sozinho"}, Points: 0},
			},
			Fact: model.LocalizedText{
				EN: "Transport is responsible for roughly a quarter of global energy-related CO2 emissions.",
				PT: "O transporte responde por cerca de um quarto das emissões globais de CO2 ligadas à energia.",
			},
		},
		{
			ID:         "q_water_usage",
			Categories: allCategories(),
			Interests:  []string{"water"},
			Difficulty: model.DifficultyBeginner,
			Priority:   8,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you take steps to reduce water consumption, like shorter showers?",
				PT: "Você toma medidas para reduzir o consumo de água, como banhos mais curtos?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "A five-minute shower uses about a third of the water of a fifteen-minute one.",
				PT: "Um banho de cinco minutos usa cerca de um terço da água de um banho de quinze minutos.",
			},
		},
		{
			ID:         "q_food_choices",
			Categories: allCategories(),
			Difficulty: model.DifficultyIntermediate,
			Priority:   7,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "How often do you choose plant-based meals over meat?",
				PT: "Com que frequência você escolhe refeições à base de plantas em vez de carne?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Food systems account for about a third of global greenhouse gas emissions.",
				PT: "Os sistemas alimentares respondem por cerca de um terço das emissões globais de gases de efeito estufa.",
			},
		},
		{
			ID:         "q_single_use_plastic",
			Categories: allCategories(),
			Interests:  []string{"recycling"},
			Difficulty: model.DifficultyBeginner,
			Priority:   7,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you avoid single-use plastics like bags and straws?",
				PT: "Você evita plásticos descartáveis como sacolas e canudos?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Over 8 million tonnes of plastic enter the oceans every year.",
				PT: "Mais de 8 milhões de toneladas de plástico chegam aos oceanos todos os anos.",
			},
		},
		{
			ID:         "q_climate_news",
			Categories: allCategories(),
			Difficulty: model.DifficultyBeginner,
			Priority:   6,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you follow news about climate change and sustainability?",
				PT: "Você acompanha notícias sobre mudanças climáticas e sustentabilidade?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Public awareness is one of the strongest predictors of climate policy support.",
				PT: "A conscientização pública é um dos maiores preditores de apoio a políticas climáticas.",
			},
		},
		{
			ID:         "q_energy_sources",
			Categories: allCategories(),
			Interests:  []string{"renewable_energy"},
			Difficulty: model.DifficultyIntermediate,
			Priority:   7,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Which of these is a renewable energy source?",
				PT: "Qual destas é uma fonte de energia renovável?",
			},
			Options: []model.QuestionOption{
				{Value: "solar", Label: model.LocalizedText{EN: "Solar power", PT: "Energia solar"}, Points: 6},
				{Value: "natural_gas", Label: model.LocalizedText{EN: "Natural gas", PT: "Gás natural"}, Points: 0},
				{Value: "coal", Label: model.LocalizedText{EN: "Coal", PT: "Carvão"}, Points: 0},
				{Value: "diesel", Label: model.LocalizedText{EN: "Diesel", PT: "Diesel"}, Points: 0},
			},
			Fact: model.LocalizedText{
				EN: "Over 80% of Brazil's electricity already comes from renewable sources.",
				PT: "Mais de 80% da eletricidade do Brasil já vem de fontes renováveis.",
			},
		},
		{
			ID:         "q_consumption_habits",
			Categories: allCategories(),
			Difficulty: model.DifficultyIntermediate,
			Priority:   6,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you repair or repurpose items instead of replacing them?",
				PT: "Você conserta ou reaproveita itens em vez de substituí-los?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Extending a product's life by nine months reduces its footprint by 20-30%.",
				PT: "Estender a vida útil de um produto em nove meses reduz sua pegada em 20-30%.",
			},
		},
		{
			ID:         "q_carbon_literacy",
			Categories: allCategories(),
			Difficulty: model.DifficultyAdvanced,
			Priority:   6,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you know the main sources of your personal carbon footprint?",
				PT: "Você conhece as principais fontes da sua pegada de carbono pessoal?",
			},
			Options: []model.QuestionOption{
				{Value: "track", Label: model.LocalizedText{EN: "Yes, and I track them", PT: "Sim, e eu as monitoro"}, Points: 6},
				{Value: "aware", Label: model.LocalizedText{EN: "Yes, roughly", PT: "Sim, aproximadamente"}, Points: 4},
				{Value: "vague", Label: model.LocalizedText{EN: "Only vaguely", PT: "Apenas vagamente"}, Points: 2},
				{Value: "no", Label: model.LocalizedText{EN: "No", PT: "Não"}, Points: 0},
			},
			Fact: model.LocalizedText{
				EN: "Housing, transport and food typically make up over 70% of a personal footprint.",
				PT: "Moradia, transporte e alimentação normalmente somam mais de 70% da pegada pessoal.",
			},
		},
		{
			ID:         "q_campus_sustainability",
			Categories: []model.Category{model.CategoryStudent},
			Difficulty: model.DifficultyBeginner,
			Priority:   8,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you take part in sustainability initiatives at your school or university?",
				PT: "Você participa de iniciativas de sustentabilidade na sua escola ou universidade?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Student-led initiatives have cut campus energy use by up to 15% in some universities.",
				PT: "Iniciativas estudantis já reduziram o consumo de energia em até 15% em algumas universidades.",
			},
		},
		{
			ID:         "q_workplace_practices",
			Categories: []model.Category{model.CategoryEmployee},
			Difficulty: model.DifficultyIntermediate,
			Priority:   8,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you follow sustainable practices at work, like reducing paper and printing?",
				PT: "Você segue práticas sustentáveis no trabalho, como reduzir papel e impressões?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "The average office worker uses around 10,000 sheets of paper per year.",
				PT: "Um trabalhador de escritório usa em média cerca de 10.000 folhas de papel por ano.",
			},
		},
		{
			ID:         "q_company_emissions",
			Categories: []model.Category{model.CategoryCompanyOwner},
			Difficulty: model.DifficultyAdvanced,
			Priority:   10,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Does your company measure its greenhouse gas emissions?",
				PT: "Sua empresa mede suas emissões de gases de efeito estufa?",
			},
			Options: []model.QuestionOption{
				{Value: "full", Label: model.LocalizedText{EN: "Yes, with reduction targets", PT: "Sim, com metas de redução"}, Points: 6},
				{Value: "partial", Label: model.LocalizedText{EN: "Partially", PT: "Parcialmente"}, Points: 4},
				{Value: "planned", Label: model.LocalizedText{EN: "Not yet, but planned", PT: "Ainda não, mas está planejado"}, Points: 2},
				{Value: "no", Label: model.LocalizedText{EN: "No", PT: "Não"}, Points: 0},
			},
			Fact: model.LocalizedText{
				EN: "Companies that measure emissions are twice as likely to reduce them.",
				PT: "Empresas que medem emissões têm o dobro de chance de reduzi-las.",
			},
		},
		{
			ID:         "q_supply_chain",
			Categories: []model.Category{model.CategoryCompanyOwner},
			Industries: []string{"manufacturing", "agriculture", "retail"},
			Difficulty: model.DifficultyAdvanced,
			Priority:   8,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you consider environmental criteria when choosing suppliers?",
				PT: "Você considera critérios ambientais ao escolher fornecedores?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Supply chains account for more than 80% of a typical consumer company's emissions.",
				PT: "Cadeias de suprimentos respondem por mais de 80% das emissões de uma empresa de consumo típica.",
			},
		},
		{
			ID:         "q_public_policy",
			Categories: []model.Category{model.CategoryGovernment},
			Difficulty: model.DifficultyAdvanced,
			Priority:   10,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Does your department include climate criteria in public procurement?",
				PT: "Seu órgão inclui critérios climáticos em compras públicas?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Public procurement represents around 12% of GDP in OECD countries.",
				PT: "As compras públicas representam cerca de 12% do PIB nos países da OCDE.",
			},
		},
		{
			ID:         "q_urban_planning",
			Categories: []model.Category{model.CategoryGovernment},
			Locations:  []string{"SP", "São Paulo", "RJ", "Rio de Janeiro"},
			Difficulty: model.DifficultyAdvanced,
			Priority:   8,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Are green areas and public transport prioritized in your city's planning?",
				PT: "Áreas verdes e transporte público são prioridade no planejamento da sua cidade?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Urban trees can lower surrounding air temperature by up to 8°C.",
				PT: "Árvores urbanas podem reduzir a temperatura do ar ao redor em até 8°C.",
			},
		},
		{
			ID:         "q_sp_air_quality",
			Categories: []model.Category{model.CategoryStudent, model.CategoryEmployee},
			Locations:  []string{"SP", "São Paulo"},
			Difficulty: model.DifficultyIntermediate,
			Priority:   9,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you check air quality indexes before outdoor activities in São Paulo?",
				PT: "Você verifica índices de qualidade do ar antes de atividades ao ar livre em São Paulo?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Vehicle emissions are the main source of air pollution in the São Paulo metro area.",
				PT: "Emissões veiculares são a principal fonte de poluição do ar na região metropolitana de São Paulo.",
			},
		},
		{
			ID:         "q_amazon_awareness",
			Categories: []model.Category{model.CategoryStudent, model.CategoryGovernment},
			Locations:  []string{"AM", "Manaus"},
			Interests:  []string{"biodiversity"},
			Difficulty: model.DifficultyIntermediate,
			Priority:   9,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you support or take part in forest conservation actions?",
				PT: "Você apoia ou participa de ações de conservação florestal?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "The Amazon stores an estimated 150-200 billion tonnes of carbon.",
				PT: "A Amazônia armazena cerca de 150-200 bilhões de toneladas de carbono.",
			},
		},
		{
			ID:         "q_tech_footprint",
			Categories: []model.Category{model.CategoryEmployee, model.CategoryCompanyOwner},
			Industries: []string{"technology", "software"},
			Difficulty: model.DifficultyAdvanced,
			Priority:   7,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you consider the energy footprint of cloud and computing resources you use?",
				PT: "Você considera a pegada energética dos recursos de nuvem e computação que usa?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "Data centers consume about 1-1.5% of global electricity.",
				PT: "Data centers consomem cerca de 1-1,5% da eletricidade global.",
			},
		},
		{
			ID:         "q_agro_practices",
			Categories: []model.Category{model.CategoryCompanyOwner, model.CategoryGovernment},
			Industries: []string{"agriculture"},
			Difficulty: model.DifficultyAdvanced,
			Priority:   7,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Are low-carbon practices like no-till farming part of your operations or policy?",
				PT: "Práticas de baixo carbono como plantio direto fazem parte das suas operações ou políticas?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "No-till farming can cut soil carbon loss by more than half.",
				PT: "O plantio direto pode reduzir a perda de carbono do solo em mais da metade.",
			},
		},
		{
			ID:         "q_fast_fashion",
			Categories: []model.Category{model.CategoryStudent},
			Interests:  []string{"recycling", "conservation"},
			Difficulty: model.DifficultyIntermediate,
			Priority:   5,
			IsActive:   true,
			Text: model.LocalizedText{
				EN: "Do you buy second-hand clothes or keep clothes for longer to avoid fast fashion?",
				PT: "Você compra roupas de segunda mão ou usa roupas por mais tempo para evitar fast fashion?",
			},
			Options: frequencyOptions(),
			Fact: model.LocalizedText{
				EN: "The fashion industry produces around 10% of global carbon emissions.",
				PT: "A indústria da moda produz cerca de 10% das emissões globais de carbono.",
			},
		},
		{
			// Retired pilot question kept for historical sessions; never selected.
			ID:         "q_legacy_pilot",
			Categories: allCategories(),
			Difficulty: model.DifficultyBeginner,
			Priority:   1,
			IsActive:   false,
			Text: model.LocalizedText{
				EN: "Have you heard of the term 'carbon footprint'?",
				PT: "Você já ouviu falar no termo 'pegada de carbono'?",
			},
			Options: []model.QuestionOption{
				{Value: "yes", Label: model.LocalizedText{EN: "Yes", PT: "Sim"}, Points: 6},
				{Value: "no", Label: model.LocalizedText{EN: "No", PT: "Não"}, Points: 0},
			},
			Fact: model.LocalizedText{
				EN: "The term 'carbon footprint' was popularized in the early 2000s.",
				PT: "O termo 'pegada de carbono' foi popularizado no início dos anos 2000.",
			},
		},
	}
}
