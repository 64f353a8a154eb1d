package command

// Usage is the text printed by .help.
const Usage = `Commands:
  .randomize                     shuffle the current sequence
  .generate [count] [min-max] [nr]
                                 replace the sequence with random values (nr: no repeats)
  .generate full min-max         every value of the range once, shuffled
  .preset <name> [count]         load a named input shape
  .readlist <file>               load integers separated by spaces or commas
  .list | .graphs                switch between list and bar graph rendering
  .speed <multiplier>            playback speed (1 = no delay, >1 faster)
  .sort <algorithm>              sort the sequence step by step
  .quicksort .mergesort .timsort .radix .heapsort
                                 shorthands for .sort
  .compare <alg1> <alg2>         measure two algorithms on copies of the sequence
  .algorithms                    list the available algorithms
  .show                          redraw the current sequence
  .help                          show this text
  .exit | .quit                  leave sortlab`
