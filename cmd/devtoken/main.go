// Comando devtoken emite un JWT local para probar el API en desarrollo.
// En producción los tokens los emite el backend de autenticación; este CLI
// solo evita tener que montarlo para probar endpoints protegidos.
//
// Uso:
//
//	JWT_SECRET=... go run ./cmd/devtoken -user ana -role manager
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/insights-api/pkg/config"
	"github.com/jhoicas/insights-api/pkg/jwt"
)

func main() {
	user := flag.String("user", "dev", "user_id a incluir en el token")
	role := flag.String("role", jwt.RoleAdmin, "rol: admin, manager o staff")
	flag.Parse()

	switch *role {
	case jwt.RoleAdmin, jwt.RoleManager, jwt.RoleStaff:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido: %s\n", *role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no configurado")
		os.Exit(1)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
