package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for shiftr",
	Long:  `Display detailed help for all shiftr commands, keys and settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(out io.Writer) {
	fmt.Fprint(out, `
███████╗██╗  ██╗██╗███████╗████████╗██████╗
██╔════╝██║  ██║██║██╔════╝╚══██╔══╝██╔══██╗
███████╗███████║██║█████╗     ██║   ██████╔╝
╚════██║██╔══██║██║██╔══╝     ██║   ██╔══██╗
███████║██║  ██║██║██║        ██║   ██║  ██║
╚══════╝╚═╝  ╚═╝╚═╝╚═╝        ╚═╝   ╚═╝  ╚═╝

shiftr - Work Shift Timer

COMMANDS:

  (no command), dash      Open the live dashboard

    Keys:
      c / space     Clock in / out
      ↑/↓ or k/j    Select a break
      a             Add break
      e / enter     Edit selected break
      d / delete    Delete selected break
      s             Set shift length
      x             Export breaks to CSV
      t             Toggle dark / light theme
      R             Reset the day
      q / esc       Quit

  in                      Clock in
  out                     Clock out
  toggle                  Clock in or out
  status                  Show gross, effective, remaining, overtime, expected end
    --no-color            Plain output

  set-in <time>           Set the clock-in time (HH:MM or HH:MM:SS)
    --clear               Remove the clock-in time
  set-out <time>          Set the clock-out time
    --clear               Remove the clock-out time
  shift [hours]           Show or set the shift length (e.g. 7.5)

  break add [start end]   Record a break, prompts when times are omitted
    --no-ui               Never prompt
  break ls                List today's breaks
  break edit <id> <s> <e> Change a break's times
  break rm <id>           Delete a break

  export                  Write breaks_<date>.csv
    --dir                 Output directory
  reset                   Clear clock times and breaks
    -y, --yes             Skip confirmation
  theme                   Toggle dark / light dashboard
  version                 Print version information
  help                    Show this help

SETTINGS (environment or .env in SHIFTR_HOME / working directory):

  SHIFTR_HOME                 Data directory (default ~/.shiftr)
  SHIFTR_STORE                sqlite | json (default sqlite)
  SHIFTR_DEFAULT_SHIFT_HOURS  Shift length for a fresh install (default 9)
  SHIFTR_LUNCH_MINUTES        Fixed lunch deducted once clocked in (default 0)
  SHIFTR_SAVE_DEBOUNCE        Delay before saving changes (default 300ms)
  SHIFTR_EXPORT_DIR           Default export directory (default .)
  SHIFTR_LOG_LEVEL            Log level (default warn)

`)
}
