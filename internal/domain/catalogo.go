package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// ItemCatalogo descreve uma integração que os comerciais podem solicitar.
type ItemCatalogo struct {
	Nome      string `json:"name"`
	Descricao string `json:"description"`
	Categoria string `json:"category"`
	Site      string `json:"website"`
}

type GrupoCatalogo struct {
	Categoria string         `json:"category"`
	Itens     []ItemCatalogo `json:"items"`
}

// Catalogo é a lista fechada de integrações aceitas; novas entradas entram por aqui para evitar duplicatas.
var Catalogo = []ItemCatalogo{
	{Nome: "Overfull", Descricao: "Logiciel de réservation pour restaurants", Categoria: "Réservation", Site: "https://www.overfull.fr/"},
	{Nome: "Zucchetti PMS", Descricao: "Système Lean PMS", Categoria: "Hôtellerie", Site: "https://www.zucchetti.fr/produits/lean-pms"},
	{Nome: "Cegid", Descricao: "ERP et comptabilité", Categoria: "Comptabilité", Site: "https://www.cegid.com/fr/"},
	{Nome: "Komia", Descricao: "Solution d'hygiène alimentaire", Categoria: "Hygiène", Site: "https://www.komia.io/"},
	{Nome: "Deliveroo", Descricao: "Service de livraison", Categoria: "Livraison", Site: "https://deliveroo.fr/"},
	{Nome: "Delicity", Descricao: "Plateforme de livraison", Categoria: "Livraison", Site: "https://delicity.com/"},
	{Nome: "Sage", Descricao: "Logiciel comptable", Categoria: "Comptabilité", Site: "https://www.sage.com/fr-fr/"},
	{Nome: "Chift API", Descricao: "Solution de planification RH", Categoria: "Third Party Integrator", Site: "https://www.chift.eu/"},
}

// BuscarNoCatalogo procura por nome exato, respeitando maiúsculas como o formulário envia.
func BuscarNoCatalogo(nome string) (ItemCatalogo, bool) {
	for _, item := range Catalogo {
		if item.Nome == nome {
			return item, true
		}
	}
	return ItemCatalogo{}, false
}

// AgruparCatalogo filtra itens pelo termo (nome, descrição ou categoria) e agrupa por categoria
// na ordem em que as categorias aparecem no catálogo. Categorias sem itens ficam de fora.
func AgruparCatalogo(itens []ItemCatalogo, termo string) []GrupoCatalogo {
	grupos := make([]GrupoCatalogo, 0)
	indice := make(map[string]int)

	for _, item := range itens {
		if termo != "" &&
			!ContemIgnorandoCaixa(item.Nome, termo) &&
			!ContemIgnorandoCaixa(item.Descricao, termo) &&
			!ContemIgnorandoCaixa(item.Categoria, termo) {
			continue
		}
		pos, ok := indice[item.Categoria]
		if !ok {
			pos = len(grupos)
			indice[item.Categoria] = pos
			grupos = append(grupos, GrupoCatalogo{Categoria: item.Categoria})
		}
		grupos[pos].Itens = append(grupos[pos].Itens, item)
	}

	return grupos
}

// ContemIgnorandoCaixa compara usando case folding Unicode para tratar acentos maiúsculos ("É" x "é").
func ContemIgnorandoCaixa(texto, termo string) bool {
	if termo == "" {
		return true
	}
	return strings.Contains(dobrar(texto), dobrar(termo))
}

// ChaveNormalizada é usada para contar restaurantes distintos sem depender de caixa ou espaços.
func ChaveNormalizada(s string) string {
	return dobrar(strings.Join(strings.Fields(s), " "))
}

func dobrar(s string) string {
	// Caser guarda estado, então criamos um por chamada.
	return cases.Fold().String(s)
}
