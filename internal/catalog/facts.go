package catalog

import "climatewise/internal/model"

// DefaultFacts returns the built-in fact catalog. Kind records which
// targeting dimension a fact belongs to; contextual displays filter on it.
func DefaultFacts() []model.FactEntry {
	return []model.FactEntry{
		{
			ID:         "fact_cat_student",
			Kind:       model.FactKindCategory,
			Categories: []model.Category{model.CategoryStudent},
			Title:      model.LocalizedText{EN: "Education moves the needle", PT: "Educação faz a diferença"},
			Content:    model.LocalizedText{EN: "Climate education in schools measurably increases household energy savings.", PT: "Educação climática nas escolas aumenta de forma mensurável a economia de energia nas residências."},
			Priority:   6,
		},
		{
			ID:         "fact_cat_employee",
			Kind:       model.FactKindCategory,
			Categories: []model.Category{model.CategoryEmployee},
			Title:      model.LocalizedText{EN: "Workplaces matter", PT: "O local de trabalho importa"},
			Content:    model.LocalizedText{EN: "Commuting and office energy are the two largest work-related emission sources.", PT: "Deslocamento e energia do escritório são as duas maiores fontes de emissões ligadas ao trabalho."},
			Priority:   5,
		},
		{
			ID:         "fact_cat_company",
			Kind:       model.FactKindCategory,
			Categories: []model.Category{model.CategoryCompanyOwner},
			Title:      model.LocalizedText{EN: "Small business, big share", PT: "Pequenas empresas, grande parcela"},
			Content:    model.LocalizedText{EN: "Small and medium businesses account for roughly half of business-sector emissions.", PT: "Pequenas e médias empresas respondem por cerca de metade das emissões do setor empresarial."},
			Priority:   5,
		},
		{
			ID:         "fact_cat_government",
			Kind:       model.FactKindCategory,
			Categories: []model.Category{model.CategoryGovernment},
			Title:      model.LocalizedText{EN: "Policy multiplies action", PT: "Políticas multiplicam ações"},
			Content:    model.LocalizedText{EN: "Cities with climate action plans cut per-capita emissions about twice as fast.", PT: "Cidades com planos de ação climática reduzem emissões per capita cerca de duas vezes mais rápido."},
			Priority:   5,
		},
		{
			ID:        "fact_loc_sp",
			Kind:      model.FactKindLocation,
			Locations: []string{"SP", "São Paulo"},
			Title:     model.LocalizedText{EN: "São Paulo's bus fleet", PT: "A frota de ônibus de São Paulo"},
			Content:   model.LocalizedText{EN: "São Paulo has committed to a fully zero-emission bus fleet by 2038.", PT: "São Paulo se comprometeu com uma frota de ônibus 100% livre de emissões até 2038."},
			Priority:  7,
		},
		{
			ID:        "fact_loc_rj",
			Kind:      model.FactKindLocation,
			Locations: []string{"RJ", "Rio de Janeiro"},
			Title:     model.LocalizedText{EN: "Rio's reforestation", PT: "Reflorestamento no Rio"},
			Content:   model.LocalizedText{EN: "Rio de Janeiro runs one of the world's largest urban reforestation programs.", PT: "O Rio de Janeiro mantém um dos maiores programas de reflorestamento urbano do mundo."},
			Priority:  6,
		},
		{
			ID:        "fact_loc_am",
			Kind:      model.FactKindLocation,
			Locations: []string{"AM", "Manaus"},
			Title:     model.LocalizedText{EN: "The forest next door", PT: "A floresta ao lado"},
			Content:   model.LocalizedText{EN: "The Amazon influences rainfall patterns across all of South America.", PT: "A Amazônia influencia os padrões de chuva em toda a América do Sul."},
			Priority:  7,
		},
		{
			ID:         "fact_ind_tech",
			Kind:       model.FactKindIndustry,
			Industries: []string{"technology", "software"},
			Title:      model.LocalizedText{EN: "Greener data centers", PT: "Data centers mais verdes"},
			Content:    model.LocalizedText{EN: "Hyperscale data centers are up to five times more energy efficient than on-premise servers.", PT: "Data centers de hiperescala são até cinco vezes mais eficientes em energia do que servidores locais."},
			Priority:   5,
		},
		{
			ID:         "fact_ind_agro",
			Kind:       model.FactKindIndustry,
			Industries: []string{"agriculture"},
			Title:      model.LocalizedText{EN: "Soil as a carbon sink", PT: "Solo como sumidouro de carbono"},
			Content:    model.LocalizedText{EN: "Well-managed pastures can store more carbon than they emit.", PT: "Pastagens bem manejadas podem armazenar mais carbono do que emitem."},
			Priority:   5,
		},
		{
			ID:         "fact_ind_energy",
			Kind:       model.FactKindIndustry,
			Industries: []string{"energy"},
			Title:      model.LocalizedText{EN: "Record renewable growth", PT: "Crescimento recorde das renováveis"},
			Content:    model.LocalizedText{EN: "Solar has been the cheapest source of new electricity in most of the world since 2020.", PT: "Desde 2020, a energia solar é a fonte mais barata de nova eletricidade na maior parte do mundo."},
			Priority:   6,
		},
		{
			ID:        "fact_int_renewable",
			Kind:      model.FactKindInterest,
			Interests: []string{"renewable_energy"},
			Title:     model.LocalizedText{EN: "Brazil's clean grid", PT: "A matriz limpa do Brasil"},
			Content:   model.LocalizedText{EN: "Hydropower, wind and solar together supply over 80% of Brazil's electricity.", PT: "Hidrelétricas, eólica e solar juntas fornecem mais de 80% da eletricidade do Brasil."},
			Priority:  6,
		},
		{
			ID:        "fact_int_recycling",
			Kind:      model.FactKindInterest,
			Interests: []string{"recycling"},
			Title:     model.LocalizedText{EN: "Aluminum champions", PT: "Campeões do alumínio"},
			Content:   model.LocalizedText{EN: "Brazil recycles nearly 100% of its aluminum beverage cans, a world record.", PT: "O Brasil recicla quase 100% das latas de alumínio de bebidas, um recorde mundial."},
			Priority:  6,
		},
		{
			ID:        "fact_int_biodiversity",
			Kind:      model.FactKindInterest,
			Interests: []string{"biodiversity"},
			Title:     model.LocalizedText{EN: "Megadiverse nation", PT: "Nação megadiversa"},
			Content:   model.LocalizedText{EN: "Brazil hosts around 20% of the planet's known species.", PT: "O Brasil abriga cerca de 20% das espécies conhecidas do planeta."},
			Priority:  5,
		},
		{
			ID:        "fact_int_water",
			Kind:      model.FactKindInterest,
			Interests: []string{"water"},
			Title:     model.LocalizedText{EN: "Freshwater giant", PT: "Gigante da água doce"},
			Content:   model.LocalizedText{EN: "Brazil holds about 12% of the world's freshwater reserves.", PT: "O Brasil detém cerca de 12% das reservas de água doce do mundo."},
			Priority:  5,
		},
		{
			ID:        "fact_age_youth",
			Kind:      model.FactKindAge,
			AgeRanges: []string{"16-24"},
			Title:     model.LocalizedText{EN: "Your generation leads", PT: "Sua geração lidera"},
			Content:   model.LocalizedText{EN: "People under 25 are the most likely group to change habits for climate reasons.", PT: "Pessoas com menos de 25 anos são o grupo mais propenso a mudar hábitos por razões climáticas."},
			Priority:  4,
		},
		{
			ID:        "fact_age_adult",
			Kind:      model.FactKindAge,
			AgeRanges: []string{"25-34", "35-44"},
			Title:     model.LocalizedText{EN: "Household decisions count", PT: "Decisões domésticas contam"},
			Content:   model.LocalizedText{EN: "Heating, cooling and appliance choices lock in household emissions for a decade or more.", PT: "Escolhas de climatização e eletrodomésticos definem as emissões domésticas por uma década ou mais."},
			Priority:  4,
		},
	}
}
