// Package render draws a finished (or in-progress) maze.Grid.
//
// Two outputs are provided:
//
//   - Text writes the grid to an io.Writer, one row per line, top row first.
//     ModeGroups prints walls as "X" and floor cells as their group id;
//     ModeBlocks prints walls as "██" and floors as blanks.
//   - View and Animate draw onto a tcell screen; Animate steps a maze.Builder
//     and redraws after each resolved candidate, colouring floor cells by group.
//
// Renderers never mutate the grid.
package render
