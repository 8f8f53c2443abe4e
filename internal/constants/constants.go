package constants

// Logo is printed by --logo. Each block is one day of the contribution graph.
const Logo = `
 ██████╗ ██╗████████╗██████╗ ██╗██╗  ██╗
██╔════╝ ██║╚══██╔══╝██╔══██╗██║╚██╗██╔╝
██║  ███╗██║   ██║   ██████╔╝██║ ╚███╔╝
██║   ██║██║   ██║   ██╔═══╝ ██║ ██╔██╗
╚██████╔╝██║   ██║   ██║     ██║██╔╝ ██╗
 ╚═════╝ ╚═╝   ╚═╝   ╚═╝     ╚═╝╚═╝  ╚═╝`

// Tagline is printed under the logo.
const Tagline = "Pixel art for your contribution graph"
