package content

// Default documents, one per section key. These are the single source of
// truth for both the public read path and the admin edit path: they are
// served when no row exists, when a fetch fails, and when stored content
// does not match any known shape. All defaults are already in the current
// schema, so migrating a default is the identity.

func defaultHero() Document {
	return Document{
		"badge":    "Disponível para novos projetos",
		"headline": []any{"Transformando", "ideias em", "experiências digitais"},
		"subtitle": "Desenvolvedor Front-End & Full Stack | Líder em Educação | Unindo tecnologia, gestão e propósito para criar impacto real.",
		"ctaButtons": map[string]any{
			"primary":   "Ver Projetos",
			"secondary": "Entrar em Contato",
		},
	}
}

func defaultAbout() Document {
	return Document{
		"name":     "Francisco Douglas",
		"fullName": "de Sousa Beserra",
		"bio": []any{
			map[string]any{"id": "1", "text": "Sou um profissional em constante evolução, com uma trajetória que conecta tecnologia, educação e gestão."},
			map[string]any{"id": "2", "text": "Atualmente, atuo como Diretor Escolar na Educação de Jovens e Adultos (EJA), liderando equipes e transformando vidas através da educação inclusiva."},
			map[string]any{"id": "3", "text": "Acredito que a tecnologia é uma ferramenta poderosa para democratizar oportunidades e criar impacto positivo na sociedade."},
		},
		"stats": []any{
			map[string]any{"id": "1", "value": "5+", "label": "Anos de Experiência"},
			map[string]any{"id": "2", "value": "20+", "label": "Projetos Realizados"},
			map[string]any{"id": "3", "value": "100+", "label": "Vidas Impactadas"},
		},
		"highlights": []any{
			map[string]any{"id": "1", "title": "Tecnologia", "description": "Apaixonado por criar soluções digitais que fazem a diferença"},
			map[string]any{"id": "2", "title": "Educação", "description": "Compromisso com a transformação através do ensino"},
			map[string]any{"id": "3", "title": "Gestão", "description": "Liderança humanizada focada em resultados"},
			map[string]any{"id": "4", "title": "Propósito", "description": "Impacto social e inclusão como valores fundamentais"},
		},
	}
}

func defaultSkills() Document {
	return Document{
		"categories": []any{
			map[string]any{
				"id":    "1",
				"title": "Linguagens & Frameworks",
				"icon":  "💻",
				"skills": []any{
					map[string]any{"name": "JavaScript", "level": 85},
					map[string]any{"name": "TypeScript", "level": 75},
					map[string]any{"name": "React", "level": 80},
				},
			},
		},
	}
}

func defaultExperience() Document {
	return Document{
		"experiences": []any{
			map[string]any{
				"id":       "1",
				"title":    "Diretor Escolar",
				"company":  "Educação de Jovens e Adultos (EJA)",
				"location": "Brasil",
				"period":   "Atual",
				"type":     "Tempo Integral",
				"description": []any{
					"Liderança de equipe pedagógica e administrativa com foco em resultados educacionais",
					"Implementação de projetos de inclusão digital para alunos adultos",
				},
				"highlights": []any{"Liderança", "Gestão Estratégica", "Impacto Social"},
				"featured":   true,
			},
		},
	}
}

func defaultEducation() Document {
	return Document{
		"education": []any{
			map[string]any{
				"id":          "1",
				"degree":      "Engenharia de Software",
				"institution": "Em andamento",
				"status":      "Cursando",
				"description": "Formação completa em desenvolvimento de software, arquitetura de sistemas e metodologias ágeis.",
				"progress":    60,
			},
		},
		"certifications": []any{
			map[string]any{"id": "1", "name": "Desenvolvimento Front-End"},
			map[string]any{"id": "2", "name": "JavaScript Avançado"},
			map[string]any{"id": "3", "name": "React.js"},
		},
	}
}

func defaultProjects() Document {
	return Document{
		"projects": []any{
			map[string]any{
				"id":           "1",
				"title":        "Dashboard Analytics",
				"description":  "Dashboard interativo para visualização de dados educacionais",
				"problem":      "Necessidade de acompanhar métricas educacionais",
				"solution":     "Interface moderna com React e gráficos interativos",
				"technologies": []any{"React", "TypeScript", "Tailwind CSS"},
				"results":      "Redução de 40% no tempo de análise de dados",
				"image":        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=600&h=400&fit=crop",
				"github":       "https://github.com",
				"live":         "#",
				"featured":     true,
			},
		},
	}
}

func defaultSoftSkills() Document {
	return Document{
		"skills": []any{
			map[string]any{"id": "1", "icon": "Users", "title": "Liderança Humanizada", "description": "Gestão focada em pessoas, desenvolvendo talentos e construindo equipes de alta performance."},
		},
		"quote":       "Acredito que a verdadeira liderança não é sobre ter seguidores, mas sobre desenvolver outros líderes.",
		"quoteAuthor": "Francisco Douglas",
	}
}

func defaultContactSection() Document {
	return Document{
		"sectionTitle":           "Vamos",
		"sectionHighlight":       "Conversar?",
		"sectionDescription":     "Estou sempre aberto a novas oportunidades, projetos desafiadores e conversas sobre tecnologia, educação e inovação.",
		"opportunityTitle":       "Aberto para Oportunidades",
		"opportunityDescription": "Buscando posições em Front-End, Full Stack, EdTech ou projetos freelance que combinem tecnologia e impacto social.",
		"opportunityTags":        []any{"Front-End", "Full Stack", "EdTech", "Freelance"},
		"location":               "Brasil",
	}
}

func defaultSocialLinks() Document {
	return Document{
		"links": []any{
			map[string]any{"id": "1", "icon": "Linkedin", "href": "https://linkedin.com/in/francisco-douglas-sousa", "label": "LinkedIn"},
			map[string]any{"id": "2", "icon": "Github", "href": "https://github.com/FranciscoDouglas-EngSoft", "label": "GitHub"},
			map[string]any{"id": "3", "icon": "Mail", "href": "mailto:franciscodouglas77@outlook.com", "label": "Email"},
		},
	}
}
