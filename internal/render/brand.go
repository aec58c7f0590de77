package render

import "strings"

// Brand is the static copy printed on every proposal.
type Brand struct {
	Name     string
	Initials string
	Contact  string
	Title    string
	Subtitle string
	Intro    string
}

const defaultIntro = "A Vieri Group é uma empresa de marketing e tecnologia que ajuda negócios a venderem mais pela " +
	"internet, construindo toda a estrutura digital necessária para crescer e performar no online. " +
	"Trabalhamos com foco em resultados mensuráveis, entregáveis claros e governança de projeto."

func DefaultBrand() Brand {
	return Brand{
		Name:     "Vieri Group",
		Initials: "VG",
		Contact:  "contato@vierigroup.com • (48) 99999-9999",
		Title:    "Proposta Comercial",
		Subtitle: "Prestação de Serviço de Marketing",
		Intro:    defaultIntro,
	}
}

func (b Brand) withDefaults() Brand {
	def := DefaultBrand()
	pick := func(v, d string) string {
		if strings.TrimSpace(v) == "" {
			return d
		}
		return v
	}
	b.Name = pick(b.Name, def.Name)
	b.Initials = pick(b.Initials, def.Initials)
	b.Contact = pick(b.Contact, def.Contact)
	b.Title = pick(b.Title, def.Title)
	b.Subtitle = pick(b.Subtitle, def.Subtitle)
	b.Intro = pick(b.Intro, def.Intro)
	return b
}

func (b Brand) footer() string {
	return b.Name + " • " + b.Contact
}
