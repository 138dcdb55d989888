package catalog

import "climatewise/internal/model"

// Fixed-copy recommendation ids consumed by the recommendation engine.
// Content of the score-band entries interpolates the percentage, and the
// improvement/excellence entries interpolate an answer count, via fmt verbs.
const (
	RecScoreLow          = "rec_score_low"
	RecScoreMid          = "rec_score_mid"
	RecScoreHigh         = "rec_score_high"
	RecScoreTop          = "rec_score_top"
	RecNeedsImprovement  = "rec_needs_improvement"
	RecExcellence        = "rec_excellence"
	RecCategoryPrefix    = "rec_category_"
	RecCategoryDefaultID = "rec_category_default"
)

// DefaultRecommendations returns the built-in recommendation catalog:
// the engine's fixed copy plus profile-tagged entries shown on the dashboard.
func DefaultRecommendations() []model.RecommendationEntry {
	return []model.RecommendationEntry{
		{
			ID:            RecScoreLow,
			Title:         model.LocalizedText{EN: "Start with the basics", PT: "Comece pelo básico"},
			Content:       model.LocalizedText{EN: "You scored %d%%. Small daily habits like saving energy and water are the best place to start.", PT: "Você fez %d%%. Pequenos hábitos diários, como economizar energia e água, são o melhor ponto de partida."},
			Priority:      10,
			PriorityClass: model.PriorityHigh,
		},
		{
			ID:            RecScoreMid,
			Title:         model.LocalizedText{EN: "Build on your progress", PT: "Avance no seu progresso"},
			Content:       model.LocalizedText{EN: "You scored %d%%. You already have good habits; try extending them to transport and food choices.", PT: "Você fez %d%%. Você já tem bons hábitos; tente estendê-los ao transporte e à alimentação."},
			Priority:      9,
			PriorityClass: model.PriorityMedium,
		},
		{
			ID:            RecScoreHigh,
			Title:         model.LocalizedText{EN: "Lead by example", PT: "Lidere pelo exemplo"},
			Content:       model.LocalizedText{EN: "You scored %d%%. Share what works with your community to multiply your impact.", PT: "Você fez %d%%. Compartilhe o que funciona com sua comunidade para multiplicar seu impacto."},
			Priority:      8,
			PriorityClass: model.PriorityMedium,
		},
		{
			ID:            RecScoreTop,
			Title:         model.LocalizedText{EN: "Outstanding climate literacy", PT: "Alfabetização climática exemplar"},
			Content:       model.LocalizedText{EN: "You scored %d%%. Consider mentoring others or joining local climate initiatives.", PT: "Você fez %d%%. Considere orientar outras pessoas ou participar de iniciativas climáticas locais."},
			Priority:      8,
			PriorityClass: model.PriorityLow,
		},
		{
			ID:            RecNeedsImprovement,
			Title:         model.LocalizedText{EN: "Focus areas identified", PT: "Áreas de foco identificadas"},
			Content:       model.LocalizedText{EN: "%d of your answers show room for improvement. Revisit those topics for quick wins.", PT: "%d das suas respostas mostram espaço para melhorar. Revisite esses temas para ganhos rápidos."},
			Priority:      7,
			PriorityClass: model.PriorityHigh,
		},
		{
			ID:            RecExcellence,
			Title:         model.LocalizedText{EN: "Strong habits confirmed", PT: "Hábitos fortes confirmados"},
			Content:       model.LocalizedText{EN: "%d of your answers scored the maximum. Keep those habits going and share them.", PT: "%d das suas respostas alcançaram a pontuação máxima. Mantenha esses hábitos e compartilhe-os."},
			Priority:      6,
			PriorityClass: model.PriorityLow,
		},
		{
			ID:            RecCategoryPrefix + string(model.CategoryCompanyOwner),
			Categories:    []model.Category{model.CategoryCompanyOwner},
			Title:         model.LocalizedText{EN: "Measure your company's footprint", PT: "Meça a pegada da sua empresa"},
			Content:       model.LocalizedText{EN: "Start a simple emissions inventory; measurement is the first step to reduction targets.", PT: "Comece um inventário simples de emissões; medir é o primeiro passo para metas de redução."},
			Priority:      9,
			PriorityClass: model.PriorityHigh,
		},
		{
			ID:            RecCategoryPrefix + string(model.CategoryStudent),
			Categories:    []model.Category{model.CategoryStudent},
			Title:         model.LocalizedText{EN: "Join a campus initiative", PT: "Participe de uma iniciativa no campus"},
			Content:       model.LocalizedText{EN: "Look for sustainability groups at your school; collective action amplifies individual habits.", PT: "Procure grupos de sustentabilidade na sua escola; ação coletiva amplifica hábitos individuais."},
			Priority:      9,
			PriorityClass: model.PriorityMedium,
		},
		{
			ID:            RecCategoryPrefix + string(model.CategoryGovernment),
			Categories:    []model.Category{model.CategoryGovernment},
			Title:         model.LocalizedText{EN: "Embed climate criteria in procurement", PT: "Inclua critérios climáticos nas compras"},
			Content:       model.LocalizedText{EN: "Public purchasing power is a lever: add environmental criteria to tenders and contracts.", PT: "O poder de compra público é uma alavanca: adicione critérios ambientais a licitações e contratos."},
			Priority:      9,
			PriorityClass: model.PriorityHigh,
		},
		{
			ID:            RecCategoryDefaultID,
			Title:         model.LocalizedText{EN: "Bring sustainability to your routine", PT: "Traga a sustentabilidade para sua rotina"},
			Content:       model.LocalizedText{EN: "Pick one area such as energy, waste or transport and set a concrete goal for this month.", PT: "Escolha uma área, como energia, resíduos ou transporte, e defina uma meta concreta para este mês."},
			Priority:      5,
			PriorityClass: model.PriorityMedium,
		},
		{
			ID:            "rec_solar_incentives",
			Locations:     []string{"SP", "São Paulo", "MG"},
			Title:         model.LocalizedText{EN: "Check local solar incentives", PT: "Verifique incentivos solares locais"},
			Content:       model.LocalizedText{EN: "Your region has distributed-generation credits for rooftop solar; payback is often under six years.", PT: "Sua região tem créditos de geração distribuída para energia solar; o retorno costuma vir em menos de seis anos."},
			Priority:      6,
			PriorityClass: model.PriorityMedium,
		},
		{
			ID:            "rec_coastal_resilience",
			Locations:     []string{"RJ", "Rio de Janeiro"},
			Title:         model.LocalizedText{EN: "Support coastal resilience", PT: "Apoie a resiliência costeira"},
			Content:       model.LocalizedText{EN: "Coastal cities face rising sea levels; local restoration projects welcome volunteers.", PT: "Cidades costeiras enfrentam a elevação do nível do mar; projetos locais de restauração recebem voluntários."},
			Priority:      6,
			PriorityClass: model.PriorityMedium,
		},
		{
			ID:            "rec_green_it",
			Industries:    []string{"technology", "software"},
			Title:         model.LocalizedText{EN: "Adopt green IT practices", PT: "Adote práticas de TI verde"},
			Content:       model.LocalizedText{EN: "Right-size cloud workloads and prefer regions powered by renewables.", PT: "Dimensione cargas de nuvem corretamente e prefira regiões abastecidas por renováveis."},
			Priority:      5,
			PriorityClass: model.PriorityLow,
		},
		{
			ID:            "rec_transit_challenge",
			Interests:     []string{"sustainable_transport"},
			Title:         model.LocalizedText{EN: "Try a car-free week", PT: "Experimente uma semana sem carro"},
			Content:       model.LocalizedText{EN: "Swap car trips for transit, cycling or walking for one week and compare the cost and time.", PT: "Troque o carro por transporte público, bicicleta ou caminhada por uma semana e compare custo e tempo."},
			Priority:      5,
			PriorityClass: model.PriorityLow,
		},
		{
			ID:            "rec_youth_network",
			AgeRanges:     []string{"16-24"},
			Title:         model.LocalizedText{EN: "Connect with youth climate networks", PT: "Conecte-se a redes climáticas de jovens"},
			Content:       model.LocalizedText{EN: "Youth-led organizations offer training, events and advocacy opportunities.", PT: "Organizações lideradas por jovens oferecem capacitação, eventos e oportunidades de mobilização."},
			Priority:      4,
			PriorityClass: model.PriorityLow,
		},
	}
}
