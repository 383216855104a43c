package payment

import (
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/pkg/i18n"
)

type Package struct {
	SiteType request.SiteType
	PriceXOF int64
	MaxPages int // 0 means unlimited
	Title    i18n.Key
	Desc     i18n.Key
}

var Catalog = []Package{
	{SiteType: request.SiteBasic, PriceXOF: 50000, MaxPages: 3, Title: i18n.KeyPackageBasicTitle, Desc: i18n.KeyPackageBasicDesc},
	{SiteType: request.SiteStandard, PriceXOF: 100000, MaxPages: 5, Title: i18n.KeyPackageStandardTitle, Desc: i18n.KeyPackageStandardDesc},
	{SiteType: request.SitePremium, PriceXOF: 200000, Title: i18n.KeyPackagePremiumTitle, Desc: i18n.KeyPackagePremiumDesc},
}

var methodLabels = map[Method]i18n.Key{
	MethodStripe: i18n.KeyPaymentMethodStripe,
	MethodOrange: i18n.KeyPaymentMethodOrange,
	MethodWave:   i18n.KeyPaymentMethodWave,
}

func Lookup(t request.SiteType) (Package, bool) {
	for _, p := range Catalog {
		if p.SiteType == t {
			return p, true
		}
	}
	return Package{}, false
}

func (p Package) Localize(tr *i18n.Translator, lang i18n.Language) PackageDTO {
	return PackageDTO{
		ID:          string(p.SiteType),
		Title:       tr.Translate(p.Title, lang),
		Description: tr.Translate(p.Desc, lang),
		PriceXOF:    p.PriceXOF,
		MaxPages:    p.MaxPages,
	}
}

func LocalizedCatalog(tr *i18n.Translator, lang i18n.Language) CatalogDTO {
	out := CatalogDTO{Currency: Currency}
	for _, p := range Catalog {
		out.Packages = append(out.Packages, p.Localize(tr, lang))
	}
	for _, m := range Methods {
		out.Methods = append(out.Methods, MethodDTO{ID: m, Label: tr.Translate(methodLabels[m], lang)})
	}
	return out
}
