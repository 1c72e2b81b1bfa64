package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/fiapp/internal/application/auth"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain/entity"
)

type servicios struct {
	auth        *auth.AuthUseCase
	locales     *usecase.LocalUseCase
	proveedores *usecase.ProveedorUseCase
}

// abridor conecta los casos de uso; los tests pasan uno sobre un árbol en memoria.
type abridor func(ctx context.Context, verbose bool) (*servicios, func(), error)

func newRootCmd(abrir abridor) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Administración de FIAPP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mostrar logs del almacenamiento")

	// conCasos abre el almacenamiento, ejecuta fn y cierra.
	conCasos := func(fn func(cmd *cobra.Command, args []string, s *servicios) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			s, cerrar, err := abrir(cmd.Context(), verbose)
			defer cerrar()
			if err != nil {
				return err
			}
			return fn(cmd, args, s)
		}
	}

	root.AddCommand(usuariosCmd(conCasos), localesCmd(conCasos), proveedoresCmd(conCasos))
	return root
}

type envoltura func(fn func(cmd *cobra.Command, args []string, s *servicios) error) func(*cobra.Command, []string) error

func usuariosCmd(con envoltura) *cobra.Command {
	cmd := &cobra.Command{Use: "usuarios", Short: "Gestionar usuarios"}

	cmd.AddCommand(&cobra.Command{
		Use:   "listar",
		Short: "Listar todos los usuarios",
		Args:  cobra.NoArgs,
		RunE: con(func(cmd *cobra.Command, _ []string, s *servicios) error {
			users, err := s.auth.ListarUsuarios(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMAIL\tUSUARIO\tTIPO")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\n", u.Email, u.UserID, tipoTexto(u.TipoUsuario))
			}
			return w.Flush()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "eliminar <email>",
		Short: "Eliminar un usuario por email",
		Args:  cobra.ExactArgs(1),
		RunE: con(func(cmd *cobra.Command, args []string, s *servicios) error {
			if err := s.auth.EliminarUsuario(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %s eliminado\n", args[0])
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "asignar-tipo <email> <tendero|cliente>",
		Short: "Asignar el tipo de un usuario sin rol",
		Args:  cobra.ExactArgs(2),
		RunE: con(func(cmd *cobra.Command, args []string, s *servicios) error {
			if err := s.auth.AsignarTipo(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %s ahora es %s\n", args[0], args[1])
			return nil
		}),
	})
	return cmd
}

func localesCmd(con envoltura) *cobra.Command {
	cmd := &cobra.Command{Use: "locales", Short: "Consultar locales"}
	var propietario string
	listar := &cobra.Command{
		Use:   "listar",
		Short: "Listar locales, opcionalmente de un propietario",
		Args:  cobra.NoArgs,
		RunE: con(func(cmd *cobra.Command, _ []string, s *servicios) error {
			var (
				locales []*entity.Local
				err     error
			)
			if propietario != "" {
				locales, err = s.locales.ListarPorPropietario(cmd.Context(), propietario)
			} else {
				locales, err = s.locales.ListarTodos(cmd.Context())
			}
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tPROPIETARIO\tPRODUCTOS\tCLIENTES")
			for _, l := range locales {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", l.ID, l.Nombre, l.PropietarioID, len(l.Productos), len(l.Clientes))
			}
			return w.Flush()
		}),
	}
	listar.Flags().StringVar(&propietario, "propietario", "", "user_id del tendero")
	cmd.AddCommand(listar)
	return cmd
}

func proveedoresCmd(con envoltura) *cobra.Command {
	cmd := &cobra.Command{Use: "proveedores", Short: "Consultar proveedores"}
	var propietario string
	listar := &cobra.Command{
		Use:   "listar",
		Short: "Listar proveedores, opcionalmente de un propietario",
		Args:  cobra.NoArgs,
		RunE: con(func(cmd *cobra.Command, _ []string, s *servicios) error {
			var (
				list []*entity.Proveedor
				err  error
			)
			if propietario != "" {
				list, err = s.proveedores.Listar(cmd.Context(), propietario)
			} else {
				list, err = s.proveedores.ListarTodos(cmd.Context())
			}
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tCONTACTO\tEMAIL\tPROPIETARIO")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Nombre, p.Contacto, p.Email, p.PropietarioID)
			}
			return w.Flush()
		}),
	}
	listar.Flags().StringVar(&propietario, "propietario", "", "user_id del tendero")
	cmd.AddCommand(listar)
	return cmd
}

func tipoTexto(r entity.Rol) string {
	if !r.Asignado() {
		return "(sin asignar)"
	}
	return string(r)
}
