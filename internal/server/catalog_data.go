package server

import "github.com/michoacana/antojo/internal/recommend"

// defaultEntries is the product catalog served by the reference backend.
var defaultEntries = []Entry{
	{ID: "Paleta de Mango", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Mango", Price: "$25", Image: "paleta_mango.png", Justification: "Un sabor tropical y dulce que no te puedes perder."}},
	{ID: "Paleta de Limon", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Limón", Price: "$20", Image: "paleta_limon.png", Justification: "Refrescante y ácida, la mejor opción para un día caluroso."}},
	{ID: "Helado de Vainilla", Category: "Helado", Product: recommend.Product{Name: "Helado de Vainilla", Price: "$35", Image: "helado_vainilla.png", Justification: "Un clásico cremoso y dulce que siempre satisface."}},
	{ID: "Nachos con Queso", Category: "Especialidad", Product: recommend.Product{Name: "Nachos con Queso", Price: "$50", Image: "nachos_queso.png", Justification: "Un snack salado con queso derretido, ideal para compartir."}},
	{ID: "Papas Preparadas", Category: "Especialidad", Product: recommend.Product{Name: "Papas Preparadas", Price: "$40", Image: "papas_preparadas.png", Justification: "Un platillo salado y picante, perfecto para un antojo."}},
	{ID: "Fresas con Crema", Category: "Especialidad", Product: recommend.Product{Name: "Fresas con Crema", Price: "$60", Image: "fresas_crema.png", Justification: "Fresas dulces con crema y un toque de chocolate."}},
	{ID: "Agua de Jamaica", Category: "Agua", Product: recommend.Product{Name: "Agua de Jamaica", Price: "$20", Image: "agua_jamaica.png", Justification: "Una bebida dulce y tropical que hidrata y reconforta."}},
	{ID: "Agua de Tamarindo", Category: "Agua", Product: recommend.Product{Name: "Agua de Tamarindo", Price: "$20", Image: "agua_tamarindo.png", Justification: "Un sabor ácido y tradicional, perfecto para un día soleado."}},
	{ID: "Chamoyada de Mango", Category: "Especialidad", Product: recommend.Product{Name: "Chamoyada de Mango", Price: "$40", Image: "chamoyada_mango.png", Justification: "Ácida, picante y dulce, una explosión de sabor que te encantará."}},
	{ID: "Helado de Chocolate", Category: "Helado", Product: recommend.Product{Name: "Helado de Chocolate", Price: "$35", Image: "helado_chocolate.png", Justification: "Un clásico cremoso y dulce que nunca falla."}},
	{ID: "Paleta de Fresa", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Fresa", Price: "$25", Image: "paleta_fresa.png", Justification: "Un sabor dulce y tradicional que no te puedes perder."}},
	{ID: "Helado de Coco", Category: "Helado", Product: recommend.Product{Name: "Helado de Coco", Price: "$35", Image: "helado_coco.png", Justification: "Un clásico tropical y cremoso."}},
	{ID: "Nachos con Chili", Category: "Especialidad", Product: recommend.Product{Name: "Nachos con Chili", Price: "$55", Image: "nachos_chili.png", Justification: "Un snack salado con un toque picante, perfecto para un antojo."}},
	{ID: "Papas con Chamoy", Category: "Especialidad", Product: recommend.Product{Name: "Papas con Chamoy", Price: "$45", Image: "papas_chamoy.png", Justification: "Papas crujientes con un toque de sabor salado y picante."}},
	{ID: "Agua de Horchata", Category: "Agua", Product: recommend.Product{Name: "Agua de Horchata", Price: "$20", Image: "agua_horchata.png", Justification: "Una bebida dulce y cremosa que te refresca."}},
	{ID: "Malteada de Chocolate", Category: "Especialidad", Product: recommend.Product{Name: "Malteada de Chocolate", Price: "$40", Image: "malteada_chocolate.png", Justification: "Una bebida cremoso y dulce, perfecta para un día nublado."}},
	{ID: "Nieve de Piña", Category: "Helado", Product: recommend.Product{Name: "Nieve de Piña", Price: "$30", Image: "nieve_pina.png", Justification: "Un postre de piña tropical, dulce y refrescante."}},
	{ID: "Nachos con Frijoles", Category: "Especialidad", Product: recommend.Product{Name: "Nachos con Frijoles", Price: "$55", Image: "nachos_frijoles.png", Justification: "Un plato salado y sustancioso, ideal para el almuerzo."}},
	{ID: "Copa de Helado de Vainilla", Category: "Especialidad", Product: recommend.Product{Name: "Copa de Helado de Vainilla", Price: "$45", Image: "copa_vainilla.png", Justification: "El helado clásico en una copa, perfecta con toppings."}},
	{ID: "Malteada de Fresa", Category: "Especialidad", Product: recommend.Product{Name: "Malteada de Fresa", Price: "$40", Image: "malteada_fresa.png", Justification: "Una malteada de fresa cremosa y dulce."}},
	{ID: "Agua de Limón", Category: "Agua", Product: recommend.Product{Name: "Agua de Limón", Price: "$20", Image: "agua_limon.png", Justification: "Una bebida cítrica, ácida y muy refrescante."}},
	{ID: "Agua de Piña", Category: "Agua", Product: recommend.Product{Name: "Agua de Piña", Price: "$20", Image: "agua_pina.png", Justification: "Dulce y tropical, un sabor que te transporta a la playa."}},
	{ID: "Copa de Helado de Chocolate", Category: "Especialidad", Product: recommend.Product{Name: "Copa de Helado de Chocolate", Price: "$45", Image: "copa_chocolate.png", Justification: "Una rica copa de helado de chocolate con toppings."}},
	{ID: "Papas con Valentina", Category: "Especialidad", Product: recommend.Product{Name: "Papas con Valentina", Price: "$45", Image: "papas_valentina.png", Justification: "Papas saladas con un toque picante de salsa Valentina."}},
	{ID: "Torta Cubana", Category: "Especialidad", Product: recommend.Product{Name: "Torta Cubana", Price: "$60", Image: "torta_cubana.png", Justification: "Una torta salada y sustanciosa, ideal para el almuerzo."}},
	{ID: "Agua de Mango", Category: "Agua", Product: recommend.Product{Name: "Agua de Mango", Price: "$20", Image: "agua_mango.png", Justification: "Una bebida dulce y tropical para un día soleado."}},
	{ID: "Helado de Fresa", Category: "Helado", Product: recommend.Product{Name: "Helado de Fresa", Price: "$35", Image: "helado_fresa.png", Justification: "Un helado cremoso y dulce de sabor tradicional."}},
	{ID: "Paleta de Mora", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Mora", Price: "$20", Image: "paleta_mora.png", Justification: "Una paleta ácida, perfecta para un antojo."}},
	{ID: "Chocobana", Category: "Especialidad", Product: recommend.Product{Name: "Chocobana", Price: "$25", Image: "chocobana.png", Justification: "Un postre cremoso de plátano con chocolate."}},
	{ID: "Malteada de Vainilla", Category: "Especialidad", Product: recommend.Product{Name: "Malteada de Vainilla", Price: "$40", Image: "malteada_vainilla.png", Justification: "Una bebida cremosa y dulce con el clásico sabor a vainilla."}},
	{ID: "Nachos Mixtos", Category: "Especialidad", Product: recommend.Product{Name: "Nachos Mixtos", Price: "$60", Image: "nachos_mixtos.png", Justification: "Nachos salados con una variedad de salsas y aderezos."}},
	{ID: "Paleta de Piña Colada", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Piña Colada", Price: "$25", Image: "paleta_pina_colada.png", Justification: "Una paleta tropical con sabor a piña colada, sin alcohol."}},
	{ID: "Copa de Helado de Coco", Category: "Especialidad", Product: recommend.Product{Name: "Copa de Helado de Coco", Price: "$45", Image: "copa_coco.png", Justification: "Una copa cremosa de helado de coco con toppings."}},
	{ID: "Esquites", Category: "Especialidad", Product: recommend.Product{Name: "Esquites", Price: "$40", Image: "esquites.png", Justification: "Un platillo picante con un sabor delicioso."}},
	{ID: "Frappe de Oreo", Category: "Especialidad", Product: recommend.Product{Name: "Frappe de Oreo", Price: "$45", Image: "frappe_oreo.png", Justification: "Un frappe cremoso con trozos de galleta Oreo."}},
	{ID: "Agua de Sandia", Category: "Agua", Product: recommend.Product{Name: "Agua de Sandia", Price: "$20", Image: "agua_sandia.png", Justification: "Una bebida dulce y refrescante para un día soleado."}},
	{ID: "Tostilocos", Category: "Especialidad", Product: recommend.Product{Name: "Tostilocos", Price: "$50", Image: "tostilocos.png", Justification: "Un snack salado y picante, ideal para compartir."}},
	{ID: "Coctel de Frutas con Chile", Category: "Especialidad", Product: recommend.Product{Name: "Coctel de Frutas con Chile", Price: "$35", Image: "coctel_frutas_chile.png", Justification: "Un coctel de frutas dulces con un toque picante."}},
	{ID: "Nieve de Mango", Category: "Helado", Product: recommend.Product{Name: "Nieve de Mango", Price: "$30", Image: "nieve_mango.png", Justification: "Una nieve dulce y tropical, perfecta para un día lluvioso."}},
	{ID: "Agua de Fresa", Category: "Agua", Product: recommend.Product{Name: "Agua de Fresa", Price: "$20", Image: "agua_fresa.png", Justification: "Una bebida dulce y refrescante de sabor tradicional."}},
	{ID: "Paleta de Nuez", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Nuez", Price: "$25", Image: "paleta_nuez.png", Justification: "Una paleta cremosa y dulce con trozos de nuez."}},
	{ID: "Papas con Salsas", Category: "Especialidad", Product: recommend.Product{Name: "Papas con Salsas", Price: "$45", Image: "papas_salsas.png", Justification: "Papas crujientes con una variedad de salsas saladas y picantes."}},
	{ID: "Nachos Jalapeños", Category: "Especialidad", Product: recommend.Product{Name: "Nachos Jalapeños", Price: "$55", Image: "nachos_jalapenos.png", Justification: "Nachos salados y picantes, perfectos para un antojo fuerte."}},
	{ID: "Duraznos con Crema", Category: "Especialidad", Product: recommend.Product{Name: "Duraznos con Crema", Price: "$60", Image: "duraznos_crema.png", Justification: "Un postre dulce y cremoso para refrescarte."}},
	{ID: "Rompope", Category: "Especialidad", Product: recommend.Product{Name: "Rompope", Price: "$30", Image: "rompope.png", Justification: "Una bebida cremosa y dulce, ideal para el clima frío."}},
	{ID: "Paleta de Tamarindo", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Tamarindo", Price: "$20", Image: "paleta_tamarindo.png", Justification: "Una paleta ácida de sabor tradicional."}},
	{ID: "Agua de Melon", Category: "Agua", Product: recommend.Product{Name: "Agua de Melon", Price: "$20", Image: "agua_melon.png", Justification: "Una bebida dulce y refrescante, ideal para el calor."}},
	{ID: "Helado de Oreo", Category: "Helado", Product: recommend.Product{Name: "Helado de Oreo", Price: "$35", Image: "helado_oreo.png", Justification: "Un helado cremoso con trozos de galleta Oreo."}},
	{ID: "Nachos con Carne", Category: "Especialidad", Product: recommend.Product{Name: "Nachos con Carne", Price: "$60", Image: "nachos_carne.png", Justification: "Un platillo salado y sustancioso con carne."}},
	{ID: "Agua de Frambuesa", Category: "Agua", Product: recommend.Product{Name: "Agua de Frambuesa", Price: "$20", Image: "agua_frambuesa.png", Justification: "Una bebida dulce y refrescante."}},
	{ID: "Paleta de Queso", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Queso", Price: "$25", Image: "paleta_queso.png", Justification: "Una paleta cremosa y dulce, perfecta para un antojo diferente."}},
	{ID: "Paleta de Mango con Chile", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Mango con Chile", Price: "$25", Image: "paleta_mango_chile.png", Justification: "Una paleta dulce y picante, ideal para un día de sol."}},
	{ID: "Agua de Maracuyá", Category: "Agua", Product: recommend.Product{Name: "Agua de Maracuyá", Price: "$20", Image: "agua_maracuya.png", Justification: "Una bebida ácida y refrescante, perfecta para el clima nublado."}},
	{ID: "Malteada de Vainilla y Fresa", Category: "Especialidad", Product: recommend.Product{Name: "Malteada de Vainilla y Fresa", Price: "$45", Image: "malteada_vainilla_fresa.png", Justification: "Una bebida dulce y cremosa con dos sabores clásicos."}},
	{ID: "Esquites con Hueso", Category: "Especialidad", Product: recommend.Product{Name: "Esquites con Hueso", Price: "$45", Image: "esquites_hueso.png", Justification: "Esquites picantes con un toque de carne, perfectos para un antojo."}},
	{ID: "Nachos con Guacamole", Category: "Especialidad", Product: recommend.Product{Name: "Nachos con Guacamole", Price: "$60", Image: "nachos_guacamole.png", Justification: "Nachos salados con guacamole cremoso."}},
	{ID: "Fresas con Crema y Chocolate", Category: "Especialidad", Product: recommend.Product{Name: "Fresas con Crema y Chocolate", Price: "$65", Image: "fresas_crema_chocolate.png", Justification: "Fresas dulces con crema y un toque de chocolate."}},
	{ID: "Coctel de Toronja", Category: "Especialidad", Product: recommend.Product{Name: "Coctel de Toronja", Price: "$40", Image: "coctel_toronja.png", Justification: "Un coctel cítrico y refrescante."}},
	{ID: "Helado de Cafe", Category: "Helado", Product: recommend.Product{Name: "Helado de Cafe", Price: "$35", Image: "helado_cafe.png", Justification: "Un helado cremoso con un sabor a café."}},
	{ID: "Agua de Tamarindo con Chile", Category: "Agua", Product: recommend.Product{Name: "Agua de Tamarindo con Chile", Price: "$20", Image: "agua_tamarindo_chile.png", Justification: "Una bebida ácida y picante que te sorprenderá."}},
	{ID: "Papas Fritas con Limon", Category: "Especialidad", Product: recommend.Product{Name: "Papas Fritas con Limon", Price: "$35", Image: "papas_limon.png", Justification: "Papas saladas y crujientes con un toque de limón."}},
	{ID: "Paleta de Coco con Leche", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Coco con Leche", Price: "$25", Image: "paleta_coco_leche.png", Justification: "Una paleta dulce y cremosa con sabor a coco."}},
	{ID: "Frappe de Galleta", Category: "Especialidad", Product: recommend.Product{Name: "Frappe de Galleta", Price: "$45", Image: "frappe_galleta.png", Justification: "Un frappe cremoso con trozos de galleta."}},
	{ID: "Paleta de Zarzamora", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Zarzamora", Price: "$20", Image: "paleta_zarzamora.png", Justification: "Una paleta ácida de sabor del bosque."}},
	{ID: "Chocobana con Nuez", Category: "Especialidad", Product: recommend.Product{Name: "Chocobana con Nuez", Price: "$25", Image: "chocobana_nuez.png", Justification: "Un postre dulce y cremoso con un toque de nuez."}},
	{ID: "Helado de Menta con Chispas", Category: "Helado", Product: recommend.Product{Name: "Helado de Menta con Chispas", Price: "$35", Image: "helado_menta.png", Justification: "Un helado cremoso y refrescante con chispas de chocolate."}},
	{ID: "Nachos con Jalapeños", Category: "Especialidad", Product: recommend.Product{Name: "Nachos con Jalapeños", Price: "$55", Image: "nachos_jalapenos.png", Justification: "Nachos salados con un toque picante de jalapeños."}},
	{ID: "Papas a la Diabla", Category: "Especialidad", Product: recommend.Product{Name: "Papas a la Diabla", Price: "$45", Image: "papas_diabla.png", Justification: "Papas saladas con una salsa picosa."}},
	{ID: "Agua de Guanabana", Category: "Agua", Product: recommend.Product{Name: "Agua de Guanabana", Price: "$20", Image: "agua_guanabana.png", Justification: "Una bebida dulce y tropical que te refresca."}},
	{ID: "Paleta de Mandarina", Category: "Paleta", Product: recommend.Product{Name: "Paleta de Mandarina", Price: "$20", Image: "paleta_mandarina.png", Justification: "Una paleta ácida de sabor cítrico."}},
	{ID: "Malteada de Coco", Category: "Especialidad", Product: recommend.Product{Name: "Malteada de Coco", Price: "$40", Image: "malteada_coco.png", Justification: "Una malteada cremosa y dulce con sabor a coco."}},
	{ID: "Atole de Vainilla", Category: "Especialidad", Product: recommend.Product{Name: "Atole de Vainilla", Price: "$25", Image: "atole_vainilla.png", Justification: "Una bebida cremosa y caliente con sabor a vainilla."}},
	{ID: "Tacos de Guisado", Category: "Especialidad", Product: recommend.Product{Name: "Tacos de Guisado", Price: "$20", Image: "tacos_guisado.png", Justification: "Un platillo salado y sustancioso."}},
	{ID: "Crepas con Cajeta y Nuez", Category: "Especialidad", Product: recommend.Product{Name: "Crepas con Cajeta y Nuez", Price: "$50", Image: "crepas_cajeta_nuez.png", Justification: "Un postre dulce y cremoso con cajeta y nuez."}},
	{ID: "Frappe de Vainilla", Category: "Especialidad", Product: recommend.Product{Name: "Frappe de Vainilla", Price: "$45", Image: "frappe_vainilla.png", Justification: "Un frappe cremoso y dulce con un sabor clásico."}},
	{ID: "Agua de Naranja", Category: "Agua", Product: recommend.Product{Name: "Agua de Naranja", Price: "$20", Image: "agua_naranja.png", Justification: "Una bebida cítrica y dulce que te refresca."}},
	{ID: "Duraznos con Crema y Leche Condensada", Category: "Especialidad", Product: recommend.Product{Name: "Duraznos con Crema y Leche Condensada", Price: "$65", Image: "duraznos_leche_condensada.png", Justification: "Un postre dulce y cremoso con un toque de leche condensada."}},
}
