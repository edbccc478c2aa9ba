// Package conversion turns Chivalry & Sorcery ability scores into
// Harnmaster characteristics.
//
// A conversion is a pure pipeline over one SourceCharacter:
//
//  1. validate the input record;
//  2. compute each converted ability's characteristic stat ratio (CSR),
//     its cost-adjusted value divided by the average cost of all nine
//     abilities, rounded to four decimals;
//  3. derive the baseline ("original CPRS") from the raw ability total and
//     the background;
//  4. multiply every CSR by the baseline;
//  5. derive eyesight, hearing and veteran points from the input tokens;
//  6. apply stat growth and the aura bonus.
//
// Dice are drawn from an injected dice.Roller, so the same roller script
// always yields the same Result. Nothing is shared between calls.
package conversion
