package voting

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// ErroValidacao carrega a mensagem de cada campo recusado; errors.Is(err, ErrVotoInvalido) vale.
type ErroValidacao struct {
	Campos map[string]string
}

func (e *ErroValidacao) Error() string {
	nomes := make([]string, 0, len(e.Campos))
	for nome := range e.Campos {
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes)

	partes := make([]string, len(nomes))
	for i, nome := range nomes {
		partes[i] = nome + ": " + e.Campos[nome]
	}
	return fmt.Sprintf("%s: %s", ErrVotoInvalido, strings.Join(partes, ", "))
}

func (e *ErroValidacao) Unwrap() error {
	return ErrVotoInvalido
}

// formularioNormalizado é o que passa pelo validator, já sem caracteres proibidos.
type formularioNormalizado struct {
	NomeRestaurante string `json:"restaurant_name" validate:"required,max=200"`
	MRRPotencial    string `json:"mrr_potential" validate:"required"`
	NomeIntegracao  string `json:"integration_name" validate:"required"`
	Comercial       string `json:"sales_person" validate:"required,max=120"`
	TipoCliente     string `json:"client_type" validate:"required,oneof=current_client prospect"`
	LinkSalesforce  string `json:"salesforce_link" validate:"omitempty,url,max=500"`
	Notas           string `json:"notes" validate:"max=2000"`
}

func letraPermitida(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= 0x00C0 && r <= 0x00FF)
}

func filtrar(s string, permitido func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if permitido(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SanitizarNomeRestaurante mantém letras (inclusive acentuadas latinas), dígitos, espaços e - ' & .
func SanitizarNomeRestaurante(s string) string {
	return filtrar(s, func(r rune) bool {
		return letraPermitida(r) || (r >= '0' && r <= '9') || unicode.IsSpace(r) || strings.ContainsRune("-'&.", r)
	})
}

// SanitizarComercial mantém letras, espaços, hífen e apóstrofo.
func SanitizarComercial(s string) string {
	return filtrar(s, func(r rune) bool {
		return letraPermitida(r) || unicode.IsSpace(r) || r == '-' || r == '\''
	})
}

// NormalizarMRR reduz o texto a dígitos e um único ponto decimal.
//
// Vírgula seguida de exatamente três dígitos, com um ponto mais adiante, é separador de milhar
// e sai ("1,200.50" -> "1200.50"). As demais vírgulas viram ponto. Sobrando mais de um ponto,
// o primeiro separa a parte inteira e o resto é concatenado na fração ("1.200.50" -> "1.20050").
func NormalizarMRR(s string) string {
	bruto := filtrar(s, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '.' || r == ','
	})

	var b strings.Builder
	for i := 0; i < len(bruto); i++ {
		c := bruto[i]
		if c != ',' {
			b.WriteByte(c)
			continue
		}
		if separadorMilhar(bruto, i) {
			continue
		}
		b.WriteByte('.')
	}

	partes := strings.Split(b.String(), ".")
	if len(partes) > 2 {
		return partes[0] + "." + strings.Join(partes[1:], "")
	}
	return b.String()
}

func separadorMilhar(s string, i int) bool {
	fim := i + 4
	if fim > len(s) {
		return false
	}
	for _, c := range s[i+1 : fim] {
		if c < '0' || c > '9' {
			return false
		}
	}
	if fim < len(s) && s[fim] >= '0' && s[fim] <= '9' {
		return false
	}
	return strings.Contains(s[fim:], ".")
}

// ParseMRR converte o valor já normalizado; texto sem dígitos conta como vazio.
func ParseMRR(normalizado string) (decimal.Decimal, error) {
	if !strings.ContainsAny(normalizado, "0123456789") {
		return decimal.Zero, errMRRVazio
	}

	valor := normalizado
	if strings.HasPrefix(valor, ".") {
		valor = "0" + valor
	}
	valor = strings.TrimSuffix(valor, ".")

	d, err := decimal.NewFromString(valor)
	if err != nil {
		return decimal.Zero, fmt.Errorf("mrr %q: %w", normalizado, err)
	}
	return d, nil
}

var errMRRVazio = errors.New("mrr vazio")

// mrrMaximo é o teto de numeric(12,2), tipo das colunas mrr e mrr_potential.
var mrrMaximo = decimal.RequireFromString("9999999999.99")

const mensagemMRRAlto = "montant trop élevé"

// NormalizarFormulario aplica a limpeza de cada campo e valida o resultado.
// O voto devolvido ainda não tem ID nem data de criação.
func NormalizarFormulario(form domain.FormularioVoto) (domain.Voto, error) {
	n := formularioNormalizado{
		NomeRestaurante: SanitizarNomeRestaurante(form.NomeRestaurante),
		MRRPotencial:    NormalizarMRR(form.MRRPotencial),
		NomeIntegracao:  strings.TrimSpace(form.NomeIntegracao),
		Comercial:       SanitizarComercial(form.Comercial),
		TipoCliente:     strings.TrimSpace(form.TipoCliente),
		LinkSalesforce:  strings.TrimSpace(form.LinkSalesforce),
		Notas:           strings.TrimSpace(form.Notas),
	}

	campos := map[string]string{}
	if err := validate.Struct(n); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return domain.Voto{}, fmt.Errorf("%w: %v", ErrVotoInvalido, err)
		}
		for _, fe := range errs {
			campos[fe.Field()] = mensagemValidacao(fe)
		}
	}

	// O store guarda centavos; o valor devolvido já é o que será persistido.
	mrr, err := ParseMRR(n.MRRPotencial)
	mrr = mrr.Round(2)
	if _, jaRecusado := campos["mrr_potential"]; !jaRecusado {
		switch {
		case errors.Is(err, errMRRVazio):
			campos["mrr_potential"] = mensagemObrigatorio
		case err != nil:
			campos["mrr_potential"] = "montant invalide"
		case mrr.GreaterThan(mrrMaximo):
			campos["mrr_potential"] = mensagemMRRAlto
		}
	}

	if len(campos) > 0 {
		return domain.Voto{}, &ErroValidacao{Campos: campos}
	}

	return domain.Voto{
		NomeRestaurante: n.NomeRestaurante,
		MRRPotencial:    mrr,
		NomeIntegracao:  n.NomeIntegracao,
		Comercial:       n.Comercial,
		TipoCliente:     domain.TipoCliente(n.TipoCliente),
		LinkSalesforce:  opcional(n.LinkSalesforce),
		Notas:           opcional(n.Notas),
	}, nil
}

const mensagemObrigatorio = "champ obligatoire"

func mensagemValidacao(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return mensagemObrigatorio
	case "oneof":
		return "valeur non autorisée"
	case "url":
		return "lien invalide"
	case "max":
		return fmt.Sprintf("%s caractères maximum", fe.Param())
	}
	return "valeur invalide"
}

func opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
