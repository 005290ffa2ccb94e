package constants

import "fmt"

// Papéis do sistema (espelham usuarios.role do app original)
const (
	RoleAdmin      = "admin"
	RolePastor     = "pastor"
	RoleSecretario = "secretario"
	RoleTesoureiro = "tesoureiro"
	RoleLider      = "lider"
	RoleMembro     = "membro"
)

// Template de mensagens de acesso negado
const (
	ErrOnlySecretariatCanManage = "❌ Apenas admin, pastor ou secretário podem gerenciar %s."
	ErrOnlyTreasuryCanManage    = "❌ Apenas admin ou tesoureiro podem gerenciar %s."
	ErrOnlyAdminCanManage       = "❌ Apenas o administrador pode gerenciar %s."
)

func RoleErrorSecretariat(feature string) string {
	return fmt.Sprintf(ErrOnlySecretariatCanManage, feature)
}

func RoleErrorTreasury(feature string) string {
	return fmt.Sprintf(ErrOnlyTreasuryCanManage, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanManage, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePastor,
		RoleSecretario,
		RoleTesoureiro,
		RoleLider,
		RoleMembro,
	}

	// Cadastros gerais: membros, igrejas, eventos, escola dominical
	SecretariatRoles = []string{
		RoleAdmin,
		RolePastor,
		RoleSecretario,
	}

	// Financeiro: entradas, saídas, categorias, prestação de contas
	TreasuryRoles = []string{
		RoleAdmin,
		RoleTesoureiro,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
